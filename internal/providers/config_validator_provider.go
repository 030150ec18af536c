package providers

import (
	"fmt"
	"mindcare/internal/structures"
	"os"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate checks struct tags first and then the cross-field rules that
// tags cannot express.
func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors
	}

	c := cv.conf
	if mode := os.FileMode(c.Logger.Mode); mode&^os.ModePerm != 0 || mode&0600 != 0600 {
		return fmt.Errorf("logger.mode %#o must be a permission mode with owner read and write", c.Logger.Mode)
	}
	if c.LLM.Enabled && c.LLM.APIKey == "" {
		return fmt.Errorf("llm.apiKey is required when llm is enabled")
	}
	if c.Events.Enabled && len(c.Events.Brokers) == 0 {
		return fmt.Errorf("events.brokers is required when events are enabled")
	}
	if c.Media.Enabled && c.Media.Bucket == "" {
		return fmt.Errorf("media.bucket is required when media is enabled")
	}
	if c.Analytics.NegativeSentimentThreshold < -1 || c.Analytics.NegativeSentimentThreshold > 1 {
		return fmt.Errorf("analytics.negativeSentimentThreshold must be within [-1,1]")
	}
	return nil
}
