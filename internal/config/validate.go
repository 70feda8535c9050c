package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Completion.Temperature < 0 || c.Completion.Temperature > 2 {
		return fmt.Errorf("completion.temperature must be in [0, 2] (got %v)", c.Completion.Temperature)
	}
	if c.Completion.Timeout <= 0 {
		return fmt.Errorf("completion.timeout must be > 0 (got %v)", c.Completion.Timeout)
	}
	if c.Phonetics.Timeout <= 0 {
		return fmt.Errorf("phonetics.timeout must be > 0 (got %v)", c.Phonetics.Timeout)
	}
	if c.Dictionary.SearchLimit <= 0 {
		return fmt.Errorf("dictionary.search_limit must be > 0 (got %d)", c.Dictionary.SearchLimit)
	}
	if c.Dictionary.ImportChunkSize <= 0 {
		return fmt.Errorf("dictionary.import_chunk_size must be > 0 (got %d)", c.Dictionary.ImportChunkSize)
	}
	return nil
}
