// Package player sounds note sequences by sending them to an OSC
// receiver (the trosces "/play instrument note duration" protocol).
// It is a collaborator of the theory core: by the time a note gets here
// it is already spelled, and the player only formats and schedules it.
package player

import (
	"net"
	"strconv"
	"time"

	"github.com/hypebeast/go-osc/osc"
	"github.com/mersenne-sister/chordy/theory/log"
	"github.com/mersenne-sister/chordy/theory/note"
	"github.com/pkg/errors"
	"github.com/xlab/closer"
)

type PlayerOptions struct {
	Instrument int
	BPM        int
	Loop       int // 0: infinite
	Chord      bool
}

type Player struct {
	Addr      string // host:port of the OSC receiver
	ShowState bool

	client  *osc.Client
	stopped bool
}

func (q *Player) connect() error {
	host, portStr, err := net.SplitHostPort(q.Addr)
	if err != nil {
		return errors.Wrapf(err, "bad OSC address %q", q.Addr)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return errors.Wrapf(err, "bad OSC port %q", portStr)
	}
	q.client = osc.NewClient(host, port)
	return nil
}

// Play sends the pitches to the receiver in time, one beat per note, or
// all at once in chord mode. Ctrl-C stops cleanly between notes.
func (q *Player) Play(pitches []note.Pitch, opts *PlayerOptions) error {
	if len(pitches) == 0 {
		return errors.New("nothing to play")
	}
	if opts == nil {
		opts = &PlayerOptions{}
	}
	bpm := opts.BPM
	if bpm <= 0 {
		bpm = 120
	}
	if err := q.connect(); err != nil {
		return err
	}

	closer.Bind(func() {
		q.stopped = true
	})

	beat := time.Duration(float64(time.Minute) / float64(bpm))
	secs := float32(beat) / float32(time.Second)
	log.Infof("playing %d notes to %s at %d BPM", len(pitches), q.Addr, bpm)

	loop := opts.Loop
	for i := 0; loop == 0 || i < loop; i++ {
		if opts.Chord {
			if err := q.sendChord(pitches, opts.Instrument, secs); err != nil {
				return err
			}
			q.wait(beat)
		} else {
			for _, p := range pitches {
				if q.stopped {
					return nil
				}
				if err := q.send(p, opts.Instrument, secs); err != nil {
					return err
				}
				q.showState(p)
				q.wait(beat)
			}
		}
		if q.stopped {
			return nil
		}
	}
	return nil
}

func (q *Player) send(p note.Pitch, instrument int, seconds float32) error {
	msg := osc.NewMessage("/play")
	msg.Append(int32(instrument))
	msg.Append(p.String())
	msg.Append(seconds)
	log.Debugf("OSC %s", msg.String())
	return errors.Wrapf(q.client.Send(msg), "sending %s to %s", p, q.Addr)
}

func (q *Player) sendChord(pitches []note.Pitch, instrument int, seconds float32) error {
	for _, p := range pitches {
		if err := q.send(p, instrument, seconds); err != nil {
			return err
		}
	}
	return nil
}

func (q *Player) wait(d time.Duration) {
	if !q.stopped {
		time.Sleep(d)
	}
}
