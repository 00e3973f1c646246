//go:build voice

package tts

/*
#cgo LDFLAGS: -lespeak-ng
#include <stdlib.h>
#include <espeak-ng/speak_lib.h>

static int
espeak_init(void)
{
	return espeak_Initialize(AUDIO_OUTPUT_SYNCH_PLAYBACK, 500, NULL, 0);
}

static int
espeak_say(const char *text, const char *lang)
{
	if (!text)
	{ return -1; }

	espeak_VOICE specs = { 0 };
	specs.languages = lang;
	espeak_SetVoiceByProperties(&specs);

	espeak_Synth(text, 500, 0, 0, 0, espeakCHARS_AUTO, NULL, NULL);
	espeak_Synchronize();

	return 0;
}
*/
import "C"

import (
	"context"
	"fmt"
	"sync"
	"unsafe"

	"voxplorer/internal/errors"
)

// Espeak speaks through libespeak-ng
type Espeak struct {
	mu   sync.Mutex
	lang *C.char
}

// NewEspeak initialises espeak-ng for language (e.g. "en")
func NewEspeak(language string) (*Espeak, error) {
	if rc := C.espeak_init(); rc < 0 {
		return nil, errors.NewVoiceError(fmt.Sprintf("espeak_Initialize failed: %d", int(rc)), "init",
			errors.VoiceUnavailable, nil)
	}
	if language == "" || language == "auto" {
		language = "en"
	}
	return &Espeak{lang: C.CString(language)}, nil
}

// Speak implements voice.Speaker. Playback is synchronous and cannot be
// interrupted once started.
func (e *Espeak) Speak(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))

	if rc := C.espeak_say(ctext, e.lang); rc != 0 {
		return fmt.Errorf("espeak_say failed: %d", int(rc))
	}
	return nil
}

// Close releases espeak-ng
func (e *Espeak) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	C.espeak_Terminate()
	C.free(unsafe.Pointer(e.lang))
	e.lang = nil
	return nil
}
