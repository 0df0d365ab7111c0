package texasholdem

import "errors"

// Options configures how a table plays
type Options struct {
	StartingChips int
	SmallBlind    int
	BigBlind      int
	EquityTrials  int
	EquityWorkers int
}

// DefaultOptions returns the default options for a table
func DefaultOptions() Options {
	return Options{
		StartingChips: 1000,
		SmallBlind:    5,
		BigBlind:      10,
		EquityTrials:  1000,
		EquityWorkers: 4,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 || opts.BigBlind <= 0 {
		return errors.New("blinds must be greater than zero")
	}

	if opts.SmallBlind >= opts.BigBlind {
		return errors.New("small blind must be less than the big blind")
	}

	if opts.StartingChips < opts.BigBlind*10 {
		return errors.New("starting chips must be at least ten big blinds")
	}

	return nil
}
