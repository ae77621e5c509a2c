package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Arr1738/SPIDAM-project/dsp/filter/bank"
	"github.com/Arr1738/SPIDAM-project/measure/bands"
	"github.com/Arr1738/SPIDAM-project/measure/decay"
)

func TestFormatters(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"seconds", FormatSeconds(0.5), "0.500 s"},
		{"measure", FormatMeasure(1.25, true), "1.250 s"},
		{"measure missing", FormatMeasure(1.25, false), "n/a"},
		{"result", FormatResult(decay.Result{RT60: 0.4321, Index: 10, Found: true}), "0.432 s"},
		{"result undetermined", FormatResult(decay.Result{Index: -1}), "undetermined"},
		{"hz", FormatHz(500), "500 Hz"},
		{"hz low", FormatHz(63), "63 Hz"},
		{"khz", FormatHz(2000), "2 kHz"},
		{"khz fractional", FormatHz(1250), "1.25 kHz"},
		{"percent", FormatPercent(0.125), "12.5%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

const tableRate = 48000

func sampleResults(t *testing.T) bands.Results {
	t.Helper()

	bk, err := bank.ThreeBand(tableRate)
	if err != nil {
		t.Fatal(err)
	}

	low, _ := bk.Band(bank.NameLow)
	high, _ := bk.Band(bank.NameHigh)

	return bands.Results{
		{
			Band:        low,
			Result:      decay.Result{RT60: 0.42, Index: 100, Found: true},
			EnergyShare: 0.125,
			FilterRT60:  0.05,
		},
		{
			Band:        high,
			Result:      decay.Result{Index: -1},
			EnergyShare: 0,
			FilterRT60:  0.01,
		},
	}
}

func TestWriteBandTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBandTable(&buf, sampleResults(t), tableRate, false); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}

	for _, want := range []string{"Band", "Range", "RT60", "Energy"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("header %q missing %q", lines[0], want)
		}
	}

	if strings.Contains(lines[0], "Reliable") {
		t.Errorf("non-verbose header has reliability column: %q", lines[0])
	}

	low := lines[2]
	for _, want := range []string{"low", "0 Hz - 500 Hz", "0.420 s", "12.5%"} {
		if !strings.Contains(low, want) {
			t.Errorf("low row %q missing %q", low, want)
		}
	}

	high := lines[3]
	for _, want := range []string{"high", "2 kHz - 24 kHz", "undetermined", "0.0%"} {
		if !strings.Contains(high, want) {
			t.Errorf("high row %q missing %q", high, want)
		}
	}
}

func TestWriteBandTableVerbose(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBandTable(&buf, sampleResults(t), tableRate, true); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	if !strings.Contains(lines[0], "Edges dB") || !strings.Contains(lines[0], "Filter RT60") || !strings.Contains(lines[0], "Reliable") {
		t.Fatalf("verbose header = %q", lines[0])
	}

	// zero-phase Butterworth edges sit at -6 dB
	if !strings.Contains(lines[2], "- / -6.0") {
		t.Errorf("low row = %q, want open lower edge and -6.0 dB upper edge", lines[2])
	}

	if !strings.Contains(lines[3], "-6.0 / -") {
		t.Errorf("high row = %q, want -6.0 dB lower edge and open upper edge", lines[3])
	}

	if !strings.Contains(lines[2], "0.050 s") || !strings.HasSuffix(strings.TrimSpace(lines[2]), "yes") {
		t.Errorf("low row = %q, want filter RT60 0.050 s and reliable", lines[2])
	}

	if !strings.HasSuffix(strings.TrimSpace(lines[3]), "no") {
		t.Errorf("high row = %q, want unreliable", lines[3])
	}
}

func TestPrintHelpersWriteToSwappedOutputs(t *testing.T) {
	var out, errOut bytes.Buffer

	oldOut, oldErr := Stdout, Stderr
	Stdout, Stderr = &out, &errOut

	t.Cleanup(func() { Stdout, Stderr = oldOut, oldErr })

	PrintInfo("Samples", "48000")
	PrintWarning("band is unreliable")
	PrintError("boom")
	PrintSummary([][2]string{{"RT60", "0.500 s"}, {"EDT", "n/a"}})

	for _, want := range []string{"Samples:", "48000", "Warning:", "band is unreliable", "RT60:", "0.500 s", "EDT:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("stdout missing %q:\n%s", want, out.String())
		}
	}

	if !strings.Contains(errOut.String(), "Error:") || !strings.Contains(errOut.String(), "boom") {
		t.Errorf("stderr = %q", errOut.String())
	}

	if strings.Contains(out.String(), "boom") {
		t.Error("error message leaked to stdout")
	}
}

func TestFormatEdges(t *testing.T) {
	bk, err := bank.ThreeBand(tableRate)
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]string{
		bank.NameLow:  "- / -6.0",
		bank.NameMid:  "-6.0 / -6.0",
		bank.NameHigh: "-6.0 / -",
	}

	for _, b := range bk.Bands() {
		if got := FormatEdges(b, tableRate); got != want[b.Name] {
			t.Errorf("%s: FormatEdges = %q, want %q", b.Name, got, want[b.Name])
		}
	}
}
