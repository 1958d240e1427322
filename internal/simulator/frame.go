// Package simulator produces schema-correct telemetry without a probe
// on the bench: a scripted flight profile for end-to-end testing and a
// pressure-profile streamer for simulation mode.
package simulator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/groundlink-io/groundlink/internal/telemetry"
)

// Frame is one telemetry sample before wire encoding.
type Frame struct {
	MissionTime string
	PacketCount int64
	Mode        string
	State       string

	Altitude    float64
	Temperature float64
	Pressure    float64
	Voltage     float64

	Gyro  [3]float64
	Accel [3]float64
	Mag   [3]float64

	AutoGyroRate int

	GPSTime      string
	GPSAltitude  float64
	GPSLatitude  float64
	GPSLongitude float64
	GPSSats      int

	CmdEcho string
}

// EncodeFrame renders one frame as a downlink CSV line, matching the
// transmitter's fixed decimal precision per field group.
func EncodeFrame(teamID string, f Frame) string {
	fields := []string{
		teamID,
		f.MissionTime,
		strconv.FormatInt(f.PacketCount, 10),
		f.Mode,
		f.State,
		fmt.Sprintf("%.1f", f.Altitude),
		fmt.Sprintf("%.1f", f.Temperature),
		fmt.Sprintf("%.1f", f.Pressure),
		fmt.Sprintf("%.1f", f.Voltage),
		fmt.Sprintf("%.2f", f.Gyro[0]),
		fmt.Sprintf("%.2f", f.Gyro[1]),
		fmt.Sprintf("%.2f", f.Gyro[2]),
		fmt.Sprintf("%.2f", f.Accel[0]),
		fmt.Sprintf("%.2f", f.Accel[1]),
		fmt.Sprintf("%.2f", f.Accel[2]),
		fmt.Sprintf("%.2f", f.Mag[0]),
		fmt.Sprintf("%.2f", f.Mag[1]),
		fmt.Sprintf("%.2f", f.Mag[2]),
		strconv.Itoa(f.AutoGyroRate),
		f.GPSTime,
		fmt.Sprintf("%.1f", f.GPSAltitude),
		fmt.Sprintf("%.4f", f.GPSLatitude),
		fmt.Sprintf("%.4f", f.GPSLongitude),
		strconv.Itoa(f.GPSSats),
		f.CmdEcho,
	}
	return strings.Join(fields, string(telemetry.Separator))
}
