package internal

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"
)

// FollowRecognizer tails a transcript file that another process keeps
// appending to, in the same line format as StreamRecognizer
type FollowRecognizer struct {
	Path string
}

// NewFollowRecognizer creates a recognizer tailing path
func NewFollowRecognizer(path string) *FollowRecognizer {
	return &FollowRecognizer{Path: path}
}

func (f *FollowRecognizer) Name() string { return "follow:" + f.Path }

// Available reports whether the followed file exists
func (f *FollowRecognizer) Available() bool {
	info, err := os.Stat(f.Path)
	return err == nil && !info.IsDir()
}

// Listen emits the lines already in the file, then every complete line
// appended later. It ends when the file is removed or renamed.
func (f *FollowRecognizer) Listen(ctx context.Context, events chan<- Event) error {
	file, err := os.Open(f.Path)
	if err != nil {
		return &RecognizerError{Source: f.Name(), Op: "open", Err: err}
	}
	defer func() { _ = file.Close() }()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return &RecognizerError{Source: f.Name(), Op: "watch", Err: err}
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(f.Path); err != nil {
		return &RecognizerError{Source: f.Name(), Op: "watch", Err: err}
	}
	LogDebug("following %s", f.Path)

	if !send(ctx, events, Event{Kind: EventStart}) {
		return nil
	}

	reader := bufio.NewReader(file)
	var pending string
	drain := func() (bool, error) {
		for {
			chunk, err := reader.ReadString('\n')
			pending += chunk
			if errors.Is(err, io.EOF) {
				return true, nil
			}
			if err != nil {
				return false, &RecognizerError{Source: f.Name(), Op: "read", Err: err}
			}
			line := pending
			pending = ""
			if !emitLine(ctx, events, f.Name(), line) {
				return false, nil
			}
		}
	}

	if ok, err := drain(); !ok {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			switch {
			case event.Op&fsnotify.Write != 0:
				if ok, err := drain(); !ok {
					return err
				}
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				if pending != "" && !emitLine(ctx, events, f.Name(), pending) {
					return nil
				}
				send(ctx, events, Event{Kind: EventEnd})
				return nil
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return &RecognizerError{Source: f.Name(), Op: "watch", Err: err}
		}
	}
}
