package pipeline

import (
	"math"
	"strconv"

	"github.com/rominafarhad/pulse-ai-analyzer/dsp/core"
	"github.com/rominafarhad/pulse-ai-analyzer/dsp/spectrum"
	"github.com/rominafarhad/pulse-ai-analyzer/dsp/window"
	"github.com/rominafarhad/pulse-ai-analyzer/measure/anomaly"
	tstats "github.com/rominafarhad/pulse-ai-analyzer/stats/time"
)

// Report summarizes a run.
type Report struct {
	Config core.Config `json:"config"`

	Clean    tstats.Stats `json:"clean"`
	Noisy    tstats.Stats `json:"noisy"`
	Filtered tstats.Stats `json:"filtered"`

	// Noise is noisy - clean; Error is filtered - clean.
	Noise tstats.Stats `json:"noise"`
	Error tstats.Stats `json:"error"`

	DutyCycle float64 `json:"duty_cycle"` // share of clean samples at 1

	SNRInDB  Decibels `json:"snr_in_db"`
	SNROutDB Decibels `json:"snr_out_db"`

	// Power above the cutoff, before and after filtering.
	StopbandInDB  Decibels `json:"stopband_in_db"`
	StopbandOutDB Decibels `json:"stopband_out_db"`

	Anomalies       int     `json:"anomalies"`
	AnomalyFraction float64 `json:"anomaly_fraction"`
}

// Report computes the summary statistics of r.
func (r *Result) Report() (Report, error) {
	p := r.Pulse
	noise, err := tstats.Residual(p.Noisy, p.Clean)
	if err != nil {
		return Report{}, err
	}
	filterErr, err := tstats.Residual(r.Filtered, p.Clean)
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		Config:          r.Config,
		Clean:           tstats.Calculate(p.Clean),
		Noisy:           tstats.Calculate(p.Noisy),
		Filtered:        tstats.Calculate(r.Filtered),
		Noise:           tstats.Calculate(noise),
		Error:           tstats.Calculate(filterErr),
		DutyCycle:       tstats.FractionEqual(p.Clean, 1),
		Anomalies:       anomaly.Count(r.Labels),
		AnomalyFraction: float64(anomaly.Count(r.Labels)) / float64(len(r.Labels)),
	}

	snrIn, err := tstats.SNRdB(p.Clean, noise)
	if err != nil {
		return Report{}, err
	}
	snrOut, err := tstats.SNRdB(p.Clean, filterErr)
	if err != nil {
		return Report{}, err
	}

	nyq := r.Config.Nyquist()
	stopIn, err := stopbandDB(p.Noisy, r.Config.SampleRate, r.Config.Cutoff, nyq)
	if err != nil {
		return Report{}, err
	}
	stopOut, err := stopbandDB(r.Filtered, r.Config.SampleRate, r.Config.Cutoff, nyq)
	if err != nil {
		return Report{}, err
	}

	rep.SNRInDB, rep.SNROutDB = Decibels(snrIn), Decibels(snrOut)
	rep.StopbandInDB, rep.StopbandOutDB = Decibels(stopIn), Decibels(stopOut)
	return rep, nil
}

// StopbandAttenuationDB is how much the filter lowered the power above the
// cutoff.
func (r Report) StopbandAttenuationDB() float64 {
	return float64(r.StopbandInDB - r.StopbandOutDB)
}

// Decibels is a level that encodes to JSON null when it is not finite, as
// for the SNR of a noiseless run.
type Decibels float64

// MarshalJSON implements json.Marshaler.
func (d Decibels) MarshalJSON() ([]byte, error) {
	v := float64(d)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

// String formats the level with two decimals.
func (d Decibels) String() string {
	return strconv.FormatFloat(float64(d), 'f', 2, 64) + " dB"
}

func stopbandDB(x []float64, sampleRate, lo, hi float64) (float64, error) {
	s, err := spectrum.Analyze(x, sampleRate, window.TypeHann)
	if err != nil {
		return 0, err
	}
	return s.BandPowerDB(lo, hi)
}
