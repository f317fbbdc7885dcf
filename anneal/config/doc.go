// Package config loads a declarative problem-and-run description for
// the qanneal CLI from a YAML or JSON file, using viper. It decodes
// into a Run and validates the fields anneal.Solve itself cannot check
// until System construction; it does not build a System or call Solve.
package config
