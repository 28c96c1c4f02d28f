package sm64

import (
	"github.com/Faultbox/libsm64-go/internal/audio"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
)

// engine returns the audio engine, or nil when there is nothing to play to.
func (l *Library) engine(op string) *audio.Engine {
	if !l.ready(op) {
		return nil
	}
	return l.audio
}

// SeqPlayerPlaySequence starts sequence seqID on player, fading in over
// fadeIn audio frames.
func (l *Library) SeqPlayerPlaySequence(player, seqID uint8, fadeIn uint16) {
	if e := l.engine("seq_player_play_sequence"); e != nil {
		e.PlaySequence(player, seqID, fadeIn)
	}
}

// PlayMusic queues packed sequence args on player.
func (l *Library) PlayMusic(player uint8, seqArgs, fadeTimer uint16) {
	if e := l.engine("play_music"); e != nil {
		e.PlayMusic(player, seqArgs, fadeTimer)
	}
}

// StopBackgroundMusic removes seqID from the background queue.
func (l *Library) StopBackgroundMusic(seqID uint16) {
	if e := l.engine("stop_background_music"); e != nil {
		e.StopBackgroundMusic(seqID)
	}
}

// FadeoutBackgroundMusic removes seqID from the background queue, fading it
// out over fadeOut audio frames if it is playing.
func (l *Library) FadeoutBackgroundMusic(seqID, fadeOut uint16) {
	if e := l.engine("fadeout_background_music"); e != nil {
		e.FadeoutBackgroundMusic(seqID, fadeOut)
	}
}

// CurrentBackgroundMusic returns the sequence at the head of the background
// queue, or audio.NoBackgroundMusic.
func (l *Library) CurrentBackgroundMusic() uint16 {
	if e := l.engine("get_current_background_music"); e != nil {
		return e.CurrentBackgroundMusic()
	}
	return audio.NoBackgroundMusic
}

// PlaySound plays soundBits at pos.
func (l *Library) PlaySound(soundBits uint32, pos [3]float32) {
	if e := l.engine("play_sound"); e != nil {
		e.PlaySound(soundBits, smath.Vec3{X: pos[0], Y: pos[1], Z: pos[2]})
	}
}

// PlaySoundGlobal plays soundBits without positioning.
func (l *Library) PlaySoundGlobal(soundBits uint32) {
	if e := l.engine("play_sound_global"); e != nil {
		e.PlaySoundGlobal(soundBits)
	}
}
