package simulator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/groundlink-io/groundlink/internal/telemetry"
)

// Profile walks a scripted flight: ten packets on the pad, a powered
// ascent, a short apogee, the descent, then touchdown. Each call to
// Next advances one packet.
type Profile struct {
	mode  string
	count int64
	start time.Time

	altitude float64
	voltage  float64
	lat, lon float64

	rng *rand.Rand
}

func NewProfile(mode string) *Profile {
	return &Profile{
		mode:    mode,
		start:   time.Now(),
		voltage: 7.5,
		lat:     1.3000,
		lon:     103.8000,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func missionClock(since time.Duration) string {
	s := int(since.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, s/60%60, s%60)
}

// Next returns the next frame of the scripted flight.
func (p *Profile) Next() Frame {
	var state string
	switch {
	case p.count < 10:
		state = telemetry.StateLaunchPad
	case p.count < 30:
		state = telemetry.StateAscent
		p.altitude += 20.0
	case p.count < 35:
		state = telemetry.StateApogee
	case p.count < 80:
		state = telemetry.StateDescent
		p.altitude -= 15.0
		if p.altitude < 0 {
			p.altitude = 0
		}
	default:
		state = telemetry.StateLanded
		p.altitude = 0
	}

	p.voltage -= 0.002
	if p.voltage < 6.5 {
		p.voltage = 6.5
	}
	p.lat += 0.00001
	p.lon += 0.00001

	clock := missionClock(time.Since(p.start))
	f := Frame{
		MissionTime:  clock,
		PacketCount:  p.count,
		Mode:         p.mode,
		State:        state,
		Altitude:     p.altitude,
		Temperature:  27.0 + 0.2*p.jitter(),
		Pressure:     101.3 + 0.1*p.jitter(),
		Voltage:      p.voltage,
		Gyro:         [3]float64{0.12, -0.05, 0.01},
		Accel:        [3]float64{0.02, 0.00, -0.01},
		Mag:          [3]float64{0.23, 0.01, 0.04},
		AutoGyroRate: 15,
		GPSTime:      clock,
		GPSAltitude:  5.0,
		GPSLatitude:  p.lat,
		GPSLongitude: p.lon,
		GPSSats:      6,
		CmdEcho:      "CXON",
	}
	p.count++
	return f
}

// jitter returns a small variation in [-1, 1).
func (p *Profile) jitter() float64 {
	return 2*p.rng.Float64() - 1
}
