// Package experiment wires the dataset, rules, train and evaluate packages
// into the reference comparison: one target line, one noisy training set, one
// independently generated test set, and every selected update rule trained
// from the same initial line and scored on the test set.
//
// Rule runs are independent and execute concurrently (one goroutine per rule,
// coordinated by errgroup). Each run owns its line and a random stream derived
// from Config.Seed before any goroutine starts, so a given seed reproduces
// the same Summary regardless of scheduling. Observers passed to Run must be
// safe for concurrent use (report.Recorder and report.ZapObserver are).
package experiment
