//go:build !ci

// Package sound plays the tally board's audio cues.
//
// Each cue is read from <dir>/<cue>.mp3 or <dir>/<cue>.wav when present and
// synthesized from a short tone sequence otherwise, so every cue is audible
// without shipping asset files.
package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

const sampleRate = beep.SampleRate(44100)

// 统一的缓冲格式
var bufferFormat = beep.Format{
	SampleRate:  sampleRate,
	NumChannels: 2,
	Precision:   2,
}

// SoundManager holds one decoded buffer per cue.
type SoundManager struct {
	dir     string
	buffers map[string]*beep.Buffer
	enabled bool
}

func NewSoundManager(dir string) *SoundManager {
	return &SoundManager{
		dir:     dir,
		buffers: make(map[string]*beep.Buffer),
	}
}

// Init opens the speaker and prepares every cue.
func (sm *SoundManager) Init() error {
	// 小缓冲降低点击到出声的延迟
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("初始化扬声器失败: %w", err)
	}
	if err := sm.load(); err != nil {
		return err
	}
	sm.enabled = true
	return nil
}

// load reads cue files from dir, then synthesizes whatever is still missing.
func (sm *SoundManager) load() error {
	if err := sm.loadCueFiles(); err != nil {
		return err
	}
	for _, cue := range Cues {
		if sm.Loaded(cue) {
			continue
		}
		buf, err := synthesize(cueTones[cue])
		if err != nil {
			return fmt.Errorf("合成音效 %s 失败: %w", cue, err)
		}
		sm.buffers[cue] = buf
	}
	return nil
}

func (sm *SoundManager) loadCueFiles() error {
	entries, err := os.ReadDir(sm.dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("读取音效目录失败: %w", err)
	}

	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		cue := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if e.IsDir() || !isCue(cue) || (ext != ".mp3" && ext != ".wav") {
			continue
		}
		// 损坏的文件跳过，稍后用合成音代替
		if buf, err := decodeFile(filepath.Join(sm.dir, e.Name()), ext); err == nil {
			sm.buffers[cue] = buf
		}
	}
	return nil
}

func decodeFile(path, ext string) (*beep.Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	if ext == ".mp3" {
		streamer, format, err = mp3.Decode(f)
	} else {
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = streamer.Close() }()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(bufferFormat)
	buf.Append(s)
	return buf, nil
}

// synthesize renders a tone sequence at reduced volume.
func synthesize(t tone) (*beep.Buffer, error) {
	notes := make([]beep.Streamer, 0, len(t.freqs))
	for _, freq := range t.freqs {
		sine, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			return nil, err
		}
		notes = append(notes, beep.Take(sampleRate.N(t.step), sine))
	}

	buf := beep.NewBuffer(bufferFormat)
	buf.Append(&effects.Gain{Streamer: beep.Seq(notes...), Gain: -0.8})
	return buf, nil
}

// Loaded reports whether a cue is available.
func (sm *SoundManager) Loaded(name string) bool {
	_, ok := sm.buffers[name]
	return ok
}

func (sm *SoundManager) Play(name string) {
	if !sm.enabled {
		return
	}
	if buf, ok := sm.buffers[name]; ok {
		speaker.Play(buf.Streamer(0, buf.Len()))
	}
}

func (sm *SoundManager) Close() {
	sm.enabled = false
}
