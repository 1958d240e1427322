package replay

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/groundlink-io/groundlink/internal/flightlog"
	"github.com/groundlink-io/groundlink/pkg/log"
)

func writeLog(t *testing.T, lines ...string) string {
	t.Helper()
	header := "TEAM_ID,MISSION_TIME,PACKET_COUNT,MODE,STATE,ALTITUDE," +
		"TEMPERATURE,PRESSURE,VOLTAGE,GYRO_R,GYRO_P,GYRO_Y," +
		"ACCEL_R,ACCEL_P,ACCEL_Y,MAG_R,MAG_P,MAG_Y," +
		"AUTO_GYRO_ROTATION_RATE,GPS_TIME,GPS_ALTITUDE,GPS_LATITUDE," +
		"GPS_LONGITUDE,GPS_SATS,CMD_ECHO"
	content := header + "\n" + strings.Join(lines, "\n") + "\n"

	path := filepath.Join(t.TempDir(), "Flight_1000_test.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func recordedLine(seq, state, alt string) string {
	return "1000,13:14:02," + seq + ",F," + state + "," + alt + ",27.5,95.3,7.4," +
		"0.12,-0.05,0.01,0.02,0.00,-0.01,0.23,0.01,0.04,15," +
		"13:14:01,455.1,1.2345,103.8234,8,CXON"
}

func TestRunSummarizesRecording(t *testing.T) {
	path := writeLog(t,
		recordedLine("1", "ASCENT", "120.0"),
		recordedLine("2", "APOGEE", "452.3"),
		recordedLine("5", "DESCENT", "300.0"),
		"2031,garbage",
	)

	var out bytes.Buffer
	err := Run(context.Background(), Config{
		TeamID: "1000",
		Path:   path,
		Logger: log.NewNopLogger(),
	}, &out)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{"ACCEPTED", "3", "REJECTED", "1", "DESCENT", "452.3 m"} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestRunRejectsForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := Run(context.Background(), Config{TeamID: "1000", Path: path, Logger: log.NewNopLogger()}, &out)
	if !errors.Is(err, flightlog.ErrHeaderMismatch) {
		t.Fatalf("Run() error = %v, want header mismatch", err)
	}
}
