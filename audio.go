package main

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const (
	sampleRate    = beep.SampleRate(44100)
	stepFrequency = 220 // Hz
	stepDuration  = 60 * time.Millisecond
)

// stepper plays the footstep sound of the avatar.
type stepper interface {
	Step()
}

// silentStepper is used when sound is disabled or unavailable.
type silentStepper struct{}

func (silentStepper) Step() {}

// beepStepper plays footsteps through the speaker.
type beepStepper struct {
	mu     sync.Mutex
	buffer *beep.Buffer // decoded custom step sound, if any
}

var speakerOnce struct {
	sync.Once
	err error
}

// newStepper returns the step sound player according to the configuration.
// It never fails: problems are logged and sound is disabled.
func newStepper(c Config) stepper {
	if !c.Sound {
		return silentStepper{}
	}
	speakerOnce.Do(func() {
		speakerOnce.err = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	if speakerOnce.err != nil {
		log.Printf("initializing speaker: %v", speakerOnce.err)
		return silentStepper{}
	}
	bs := &beepStepper{}
	if c.StepSound != "" {
		buf, err := loadStepSound(c.StepSound)
		if err != nil {
			log.Printf("using default step sound: %v", err)
		} else {
			bs.buffer = buf
		}
	}
	return bs
}

// loadStepSound decodes a wav file and resamples it to the speaker's sample
// rate.
func loadStepSound(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening step sound: %w", err)
	}
	defer f.Close()
	s, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding step sound %s: %w", path, err)
	}
	defer s.Close()
	target := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(target)
	buf.Append(beep.Resample(4, format.SampleRate, sampleRate, s))
	return buf, nil
}

func (bs *beepStepper) Step() {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	if bs.buffer != nil {
		speaker.Play(bs.buffer.Streamer(0, bs.buffer.Len()))
		return
	}
	sine, err := generators.SineTone(sampleRate, stepFrequency)
	if err != nil {
		log.Printf("step sound: %v", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(stepDuration), sine))
}
