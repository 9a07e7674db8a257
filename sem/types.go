package sem

import "errors"

// Sentinel errors returned by the model builder and evaluator.
var (
	// ErrNoLoadings indicates a model without a single loading.
	ErrNoLoadings = errors.New("sem: model needs at least one loading")

	// ErrUnknownLatent indicates a structural path naming a latent that
	// owns no loadings.
	ErrUnknownLatent = errors.New("sem: unknown latent variable")

	// ErrSelfPath indicates a structural path from a latent to itself.
	ErrSelfPath = errors.New("sem: structural path endpoints must differ")

	// ErrBadSample indicates a target covariance whose shape does not
	// match the model's indicators, or a sample size below 2.
	ErrBadSample = errors.New("sem: target covariance does not match the model")
)

// PathKind tags a structural path between two latents.
type PathKind int

const (
	// Regression is a directed path (From predicts To).
	Regression PathKind = iota

	// Covariance is an undirected association between the pair.
	Covariance
)

// Loading fixes the standardized loading of one observed indicator on
// one latent variable.
type Loading struct {
	Latent    string
	Indicator string
	Coef      float64
}

// Path is one enabled structural parameter between two latents.
type Path struct {
	From string
	To   string
	Kind PathKind
	Coef float64
}

// FitIndices is the joint fit summary of one model against one target
// covariance. All five fields are derived together.
type FitIndices struct {
	ChiSquare float64
	DF        int
	PValue    float64
	CFI       float64
	RMSEA     float64
}

// Model is a structural-equation model specification: fixed loadings
// plus toggleable structural paths. The zero value is unusable; build
// with NewModel. A Model is owned by its caller and safe to copy via
// Clone.
type Model struct {
	loadings   []Loading
	latents    []string // first-appearance order
	indicators []string // first-appearance order
	paths      map[[2]string]Path
}

// NewModel builds a model from its fixed loadings. Latent and indicator
// orders follow first appearance, which also fixes the row/column order
// of ImpliedCovariance.
func NewModel(loadings []Loading) (*Model, error) {
	if len(loadings) == 0 {
		return nil, ErrNoLoadings
	}
	m := &Model{
		loadings: append([]Loading(nil), loadings...),
		paths:    make(map[[2]string]Path),
	}
	seenL := map[string]bool{}
	seenI := map[string]bool{}
	for _, l := range loadings {
		if !seenL[l.Latent] {
			seenL[l.Latent] = true
			m.latents = append(m.latents, l.Latent)
		}
		if !seenI[l.Indicator] {
			seenI[l.Indicator] = true
			m.indicators = append(m.indicators, l.Indicator)
		}
	}

	return m, nil
}

// Clone returns an independent copy of the model.
func (m *Model) Clone() *Model {
	out := &Model{
		loadings:   append([]Loading(nil), m.loadings...),
		latents:    append([]string(nil), m.latents...),
		indicators: append([]string(nil), m.indicators...),
		paths:      make(map[[2]string]Path, len(m.paths)),
	}
	for k, v := range m.paths {
		out.paths[k] = v
	}

	return out
}

// Indicators returns the observed-variable order used by
// ImpliedCovariance and Evaluate.
func (m *Model) Indicators() []string {
	return append([]string(nil), m.indicators...)
}

// Paths returns the enabled structural paths in an unspecified order.
func (m *Model) Paths() []Path {
	out := make([]Path, 0, len(m.paths))
	for _, p := range m.paths {
		out = append(out, p)
	}

	return out
}

// pairKey canonicalizes an unordered latent pair.
func pairKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}

	return [2]string{a, b}
}

// SetRegression enables a regression From→To with the given
// standardized coefficient, displacing any covariance between the same
// pair — both cannot be specified without over-parameterizing the pair.
func (m *Model) SetRegression(from, to string, coef float64) error {
	if err := m.checkPair(from, to); err != nil {
		return err
	}
	m.paths[pairKey(from, to)] = Path{From: from, To: to, Kind: Regression, Coef: coef}

	return nil
}

// SetCovariance enables a covariance between a and b with the given
// value, displacing any regression between the same pair.
func (m *Model) SetCovariance(a, b string, value float64) error {
	if err := m.checkPair(a, b); err != nil {
		return err
	}
	m.paths[pairKey(a, b)] = Path{From: a, To: b, Kind: Covariance, Coef: value}

	return nil
}

// RemovePath disables whatever structural path the pair carries.
func (m *Model) RemovePath(a, b string) {
	delete(m.paths, pairKey(a, b))
}

// checkPair validates structural path endpoints.
func (m *Model) checkPair(a, b string) error {
	if a == b {
		return ErrSelfPath
	}
	okA, okB := false, false
	for _, l := range m.latents {
		if l == a {
			okA = true
		}
		if l == b {
			okB = true
		}
	}
	if !okA || !okB {
		return ErrUnknownLatent
	}

	return nil
}

// FreeParameters counts the model's free parameters: one per loading
// plus one per enabled structural path.
func (m *Model) FreeParameters() int {
	return len(m.loadings) + len(m.paths)
}
