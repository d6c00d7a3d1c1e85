// Package report builds the tabular breakdowns shown for an account ledger:
// month-by-account balance matrices, bucket totals, net worth, and per-month
// account statistics. Reports are derived values, recomputed on demand and
// never persisted.
package report

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Bucket groups accounts by name keywords, e.g. every account whose name
// contains "SAVINGS" lands in the SAVINGS bucket.
type Bucket struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// BucketMapping assigns accounts to buckets. Bucket order is significant:
// an account joins the first bucket with a matching keyword.
type BucketMapping struct {
	buckets []Bucket
}

// bucketConfig is the YAML file layout for a custom mapping.
type bucketConfig struct {
	Buckets []Bucket `yaml:"buckets"`
}

// OtherBucket collects accounts that match no configured bucket, so every
// account still appears in the report.
const OtherBucket = "OTHER"

// DefaultBucketMapping returns the built-in account buckets.
func DefaultBucketMapping() *BucketMapping {
	names := []string{"CHECKING", "SAVINGS", "CREDIT", "LOAN", "RETIREMENT"}
	buckets := make([]Bucket, 0, len(names))
	for _, name := range names {
		buckets = append(buckets, Bucket{Name: name, Keywords: []string{name}})
	}
	return &BucketMapping{buckets: buckets}
}

// LoadBucketMapping reads a bucket mapping from a YAML configuration file.
func LoadBucketMapping(configPath string) (*BucketMapping, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config bucketConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(config.Buckets) == 0 {
		return nil, fmt.Errorf("no buckets defined in %s", configPath)
	}

	return &BucketMapping{buckets: config.Buckets}, nil
}

// BucketFor returns the bucket an account belongs to. Accounts matching no
// keyword fall into OtherBucket.
func (m *BucketMapping) BucketFor(account string) string {
	upper := strings.ToUpper(account)
	for _, b := range m.buckets {
		for _, kw := range b.Keywords {
			if strings.Contains(upper, strings.ToUpper(kw)) {
				return b.Name
			}
		}
	}
	return OtherBucket
}

// Names returns the configured bucket names in report order.
func (m *BucketMapping) Names() []string {
	names := make([]string, 0, len(m.buckets))
	for _, b := range m.buckets {
		names = append(names, b.Name)
	}
	return names
}
