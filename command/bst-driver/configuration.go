// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/configuration"
	"github.com/bitmark-inc/bstree/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultSampleCount  = 30
	defaultMinimumValue = 0
	defaultMaximumValue = 100

	defaultLogDirectory = "log"
	defaultLogFile      = "bst-driver.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	formatSideways = "sideways"
	formatOutline  = "outline"
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultExtraValues = []int{1033, 150, 483}

	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "info",
	}
)

// Configuration - the main configuration
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	SampleCount   int                  `gluamapper:"sample_count" json:"sample_count"`
	MinimumValue  int                  `gluamapper:"minimum_value" json:"minimum_value"`
	MaximumValue  int                  `gluamapper:"maximum_value" json:"maximum_value"`
	ExtraValues   []int                `gluamapper:"extra_values" json:"extra_values"`
	Seed          int64                `gluamapper:"seed" json:"seed"`
	Format        string               `gluamapper:"format" json:"format"`
	Traversals    bool                 `gluamapper:"traversals" json:"traversals"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// read the configuration file, apply defaults and validate
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		SampleCount:   defaultSampleCount,
		MinimumValue:  defaultMinimumValue,
		MaximumValue:  defaultMaximumValue,
		ExtraValues:   nil, // nil means defaultExtraValues; an empty table disables
		Seed:          0,
		Format:        formatSideways,
		Traversals:    false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    make(LoglevelMap),
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// the parsed levels are merged over the defaults
	for tag, level := range defaultLogLevels {
		if _, ok := options.Logging.Levels[tag]; !ok {
			options.Logging.Levels[tag] = level
		}
	}

	if nil == options.ExtraValues {
		options.ExtraValues = append([]int{}, defaultExtraValues...)
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)

	// the log file must be a simple name inside the log directory
	if filepath.Base(options.Logging.File) != options.Logging.File {
		return nil, fmt.Errorf("Files: %q has path component", options.Logging.File)
	}

	return options, nil
}

// check the scenario settings
func (c *Configuration) validate() error {
	if c.SampleCount < 0 {
		return fault.ErrInvalidCount
	}
	if c.MinimumValue > c.MaximumValue {
		return fault.ErrInvalidRange
	}

	c.Format = strings.ToLower(c.Format)
	switch c.Format {
	case formatSideways, formatOutline:
	default:
		return fault.ErrInvalidFormat
	}
	return nil
}

// if a relative path then prefix it with the directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
