package common

// Checker holds an ordered chain of checks. Implementations usually embed
// DefaultChecker and carry the values the checks share.
type Checker interface {
	GetFuncs() []CheckerFunc
}

// CheckerDeferFunc is called after every executed check with its index and
// result.
type CheckerDeferFunc func(int, Checker, error)

var DefaultDeferFunc CheckerDeferFunc = func(int, Checker, error) {}

type CheckerFunc func(Checker, ...interface{}) error

type DefaultChecker struct {
	Funcs []CheckerFunc
}

func (c *DefaultChecker) GetFuncs() []CheckerFunc {
	return c.Funcs
}

// RunChecker runs the checks in order and returns the first error; the
// remaining checks are not executed.
func RunChecker(checker Checker, deferFunc CheckerDeferFunc, args ...interface{}) error {
	if deferFunc == nil {
		deferFunc = DefaultDeferFunc
	}

	for i, f := range checker.GetFuncs() {
		err := f(checker, args...)
		deferFunc(i, checker, err)
		if err != nil {
			return err
		}
	}

	return nil
}
