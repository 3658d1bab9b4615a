package logger

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// AsyncConsoleHook mirrors every entry to a console writer off the request
// path. Entries are dropped when the queue is full.
type AsyncConsoleHook struct {
	out     io.Writer
	logChan chan []byte
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
	dropped atomic.Uint64
}

func NewAsyncConsoleHook(bufferSize int) *AsyncConsoleHook {
	return NewAsyncConsoleHookWithWriter(os.Stdout, bufferSize)
}

func NewAsyncConsoleHookWithWriter(out io.Writer, bufferSize int) *AsyncConsoleHook {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	hook := &AsyncConsoleHook{
		out:     out,
		logChan: make(chan []byte, bufferSize),
		done:    make(chan struct{}),
	}
	hook.wg.Add(1)
	go hook.drain()
	return hook
}

func (h *AsyncConsoleHook) Fire(entry *logrus.Entry) error {
	line, err := entry.Logger.Formatter.Format(entry)
	if err != nil {
		return err
	}
	select {
	case h.logChan <- line:
	default:
		h.dropped.Add(1)
	}
	return nil
}

// Dropped reports how many entries never reached the console.
func (h *AsyncConsoleHook) Dropped() uint64 {
	return h.dropped.Load()
}

func (h *AsyncConsoleHook) drain() {
	defer h.wg.Done()
	for {
		select {
		case line := <-h.logChan:
			_, _ = h.out.Write(line)
		case <-h.done:
			for {
				select {
				case line := <-h.logChan:
					_, _ = h.out.Write(line)
				default:
					return
				}
			}
		}
	}
}

func (h *AsyncConsoleHook) Close() {
	h.once.Do(func() {
		close(h.done)
		h.wg.Wait()
	})
}

func (h *AsyncConsoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
