package game

import (
	"math"
	"time"
)

// 音效 ID
const (
	SoundPop      = "pop"
	SoundGameOver = "game_over"
)

// ToneSpec 一段扫频音的参数
type ToneSpec struct {
	StartHz   float64       // 起始频率
	EndHz     float64       // 结束频率（线性滑动）
	Duration  time.Duration // 时长
	Amplitude float64       // 峰值振幅 0.0 ~ 1.0
	Square    bool          // true 为方波，false 为正弦波
}

// builtinTones 内置音效
var builtinTones = map[string]ToneSpec{
	// 气球爆破：短促的下行扫频
	SoundPop: {StartHz: 900, EndHz: 180, Duration: 90 * time.Millisecond, Amplitude: 0.6},
	// 游戏结束：低沉的方波下滑
	SoundGameOver: {StartHz: 330, EndHz: 82, Duration: 700 * time.Millisecond, Amplitude: 0.35, Square: true},
}

// SynthesizeTone 生成 16 位有符号小端立体声 PCM
//
// 振幅按指数包络衰减，结尾自然收敛到静音。
//
// 参数：
//   - sampleRate: 采样率
//   - tone: 音调参数
//
// 返回：
//   - []byte: PCM 数据，长度为 采样数 × 4
func SynthesizeTone(sampleRate int, tone ToneSpec) []byte {
	samples := int(float64(sampleRate) * tone.Duration.Seconds())
	if samples <= 0 {
		return nil
	}

	amplitude := math.Max(0, math.Min(1, tone.Amplitude))
	buf := make([]byte, samples*4)
	phase := 0.0

	for i := 0; i < samples; i++ {
		progress := float64(i) / float64(samples)
		freq := tone.StartHz + (tone.EndHz-tone.StartHz)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		wave := math.Sin(phase)
		if tone.Square {
			if wave >= 0 {
				wave = 1
			} else {
				wave = -1
			}
		}

		envelope := math.Exp(-4 * progress)
		v := int16(wave * envelope * amplitude * math.MaxInt16)

		buf[i*4] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v)
		buf[i*4+3] = byte(v >> 8)
	}

	return buf
}
