package config

import "github.com/spf13/viper"

// Load reads path (YAML or JSON, detected by extension) into a Run and
// validates the fields that anneal.Solve's own validation cannot catch
// before System construction.
func Load(path string) (*Run, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var run Run
	if err := v.Unmarshal(&run); err != nil {
		return nil, err
	}

	if err := validate(&run); err != nil {
		return nil, err
	}

	return &run, nil
}

func validate(run *Run) error {
	if len(run.Terms) == 0 {
		return ErrNoInteraction
	}
	if run.NumSweeps <= 0 {
		return ErrNoSweeps
	}
	return nil
}
