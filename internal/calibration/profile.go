package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// CurrentProfileVersion must be bumped whenever the CalibrationProfile
// schema changes in a way that makes older cached profiles unusable.
const CurrentProfileVersion = 1

// DefaultProfileFileName is the filename used when no explicit
// -calibration-profile path is given.
const DefaultProfileFileName = "bignumctl_calibration.json"

// CalibrationProfile is the cached result of a calibration run, along with
// the hardware fingerprint it was measured on. A profile is only trusted on
// the exact machine shape it was produced for; IsValid rejects anything else.
type CalibrationProfile struct {
	NumCPU         int       `json:"num_cpu"`
	GOARCH         string    `json:"goarch"`
	GOOS           string    `json:"goos"`
	GoVersion      string    `json:"go_version"`
	ProfileVersion int       `json:"profile_version"`
	WordSize       int       `json:"word_size"`
	CalibratedAt   time.Time `json:"calibrated_at"`

	OptimalParallelThreshold  int `json:"optimal_parallel_threshold"`
	OptimalKaratsubaThreshold int `json:"optimal_karatsuba_threshold"`
	OptimalSquareThreshold    int `json:"optimal_square_threshold"`

	CalibrationN    uint64 `json:"calibration_n"`
	CalibrationTime string `json:"calibration_time"`
}

// NewProfile returns a profile fingerprinted for the current hardware, with
// CalibratedAt set to now and every threshold left at its zero value.
func NewProfile() *CalibrationProfile {
	return &CalibrationProfile{
		NumCPU:         runtime.NumCPU(),
		GOARCH:         runtime.GOARCH,
		GOOS:           runtime.GOOS,
		GoVersion:      runtime.Version(),
		ProfileVersion: CurrentProfileVersion,
		WordSize:       32 << (^uint(0) >> 63),
		CalibratedAt:   time.Now(),
	}
}

// SaveProfile writes the profile as indented JSON to path, creating any
// missing parent directories.
func (p *CalibrationProfile) SaveProfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("calibration: create profile directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("calibration: marshal profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("calibration: write profile: %w", err)
	}
	return nil
}

// loadProfile reads and decodes a profile previously written by SaveProfile.
func loadProfile(path string) (*CalibrationProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("calibration: read profile: %w", err)
	}
	var p CalibrationProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("calibration: parse profile: %w", err)
	}
	return &p, nil
}

// IsValid reports whether the profile's hardware fingerprint matches the
// machine currently running, and its schema version is current. A nil
// profile is never valid.
func (p *CalibrationProfile) IsValid() bool {
	if p == nil {
		return false
	}
	wordSize := 32 << (^uint(0) >> 63)
	return p.NumCPU == runtime.NumCPU() &&
		p.GOARCH == runtime.GOARCH &&
		p.GOOS == runtime.GOOS &&
		p.WordSize == wordSize &&
		p.ProfileVersion == CurrentProfileVersion
}

// IsStale reports whether the profile is older than maxAge. A nil profile
// is always stale.
func (p *CalibrationProfile) IsStale(maxAge time.Duration) bool {
	if p == nil {
		return true
	}
	return time.Since(p.CalibratedAt) > maxAge
}

// String renders a short human-readable summary of the profile.
func (p *CalibrationProfile) String() string {
	if p == nil {
		return "<nil calibration profile>"
	}
	return fmt.Sprintf(
		"CalibrationProfile{cpu=%d arch=%s os=%s go=%s calibrated=%s parallel=%d karatsuba=%d square=%d}",
		p.NumCPU, p.GOARCH, p.GOOS, p.GoVersion,
		p.CalibratedAt.Format(time.RFC3339),
		p.OptimalParallelThreshold, p.OptimalKaratsubaThreshold, p.OptimalSquareThreshold,
	)
}

// LoadOrCreateProfile loads an existing profile from path if present and
// valid JSON, otherwise returns a fresh profile for the current hardware.
// The second return value reports whether an existing file was loaded.
func LoadOrCreateProfile(path string) (*CalibrationProfile, bool) {
	if p, err := loadProfile(path); err == nil {
		return p, true
	}
	return NewProfile(), false
}

// GetDefaultProfilePath returns the default location for the calibration
// profile cache: DefaultProfileFileName inside the user's cache directory,
// falling back to the current directory if that cannot be determined.
func GetDefaultProfilePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, DefaultProfileFileName)
}
