// Package config loads multi-region cache configuration from YAML and turns
// it into the per-region property bags regioncache consumes.
//
// Example document:
//
//	default_expiration: 300
//	regions:
//	  users:
//	    expiration: 600
//	    use_sliding_expiration: true
//	    prefix: "app1."
//	  catalog: {}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/jlpedrosa/regioncache"
)

// File is a parsed configuration document.
type File struct {
	// DefaultExpiration is the fallback TTL base in seconds for regions
	// that do not set their own.
	DefaultExpiration *int `yaml:"default_expiration"`

	Regions map[string]Region `yaml:"regions"`
}

// Region holds one region's settings. Pointer fields distinguish "absent"
// from zero so absent values fall through to regioncache defaults.
type Region struct {
	Expiration           *int   `yaml:"expiration"` // seconds
	UseSlidingExpiration *bool  `yaml:"use_sliding_expiration"`
	Prefix               string `yaml:"prefix"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes a YAML document. Unknown fields are rejected so typos fail
// loudly instead of silently configuring nothing.
func Parse(b []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	return &f, nil
}

// RegionNames lists configured regions in stable order.
func (f *File) RegionNames() []string {
	names := make([]string, 0, len(f.Regions))
	for name := range f.Regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Properties builds the property bag for a region, merging the document
// default with the region's own settings. Unconfigured regions get the
// document default only.
func (f *File) Properties(region string) regioncache.Properties {
	p := regioncache.Properties{}
	if f.DefaultExpiration != nil {
		p[regioncache.PropDefaultExpiration] = strconv.Itoa(*f.DefaultExpiration)
	}
	r, ok := f.Regions[region]
	if !ok {
		return p
	}
	if r.Expiration != nil {
		p[regioncache.PropExpiration] = strconv.Itoa(*r.Expiration)
	}
	if r.UseSlidingExpiration != nil {
		p[regioncache.PropSlidingExpiration] = strconv.FormatBool(*r.UseSlidingExpiration)
	}
	if r.Prefix != "" {
		p[regioncache.PropRegionPrefix] = r.Prefix
	}
	return p
}
