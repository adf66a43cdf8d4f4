package particle

import "errors"

var (
	ErrInvalidSize  = errors.New("size max must exceed size min")
	ErrInvalidSpeed = errors.New("speed must be positive")
	ErrEmptyPalette = errors.New("palette is empty")
)

// Validate checks every field of a config as if all variants were built
// from it. All failing rules are reported together.
func Validate(cfg ParticleConfig) error {
	return check(&cfg, usesAll, nil)
}

// validateCandidate checks the values drawn for one candidate of variant
// v, limited to the fields that variant reads.
func validateCandidate(v Variant, cfg *ParticleConfig, d *draws) error {
	if !v.Valid() {
		v = Burst
	}
	return check(cfg, variantTable[v].uses, d)
}

// check applies the rules for the fields in uses. With d set, the speed
// and size rules also look at the drawn values rather than only the range.
func check(cfg *ParticleConfig, uses fieldSet, d *draws) error {
	var errs []error
	if uses&usesSize != 0 {
		if !(cfg.Size.Max > cfg.Size.Min) || (d != nil && !(d.size > 0)) {
			errs = append(errs, ErrInvalidSize)
		}
	}
	if uses&usesSpeed != 0 {
		ok := cfg.Speed.Min > 0
		if d != nil {
			ok = d.speed > 0
		}
		if !ok {
			errs = append(errs, ErrInvalidSpeed)
		}
	}
	if uses&usesPalette != 0 && len(cfg.Palette) == 0 {
		errs = append(errs, ErrEmptyPalette)
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
