package cli

import (
	"fmt"

	"salespipe/internal/config"
	"salespipe/internal/etl"
	"salespipe/pkg/database"
	"salespipe/pkg/logger"
)

func runPipeline(opts *RunOptions) error {
	if opts.LogFile != "" {
		if err := logger.InitLogger(opts.LogFile); err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logger.Close()
	}

	mapping, err := config.LoadMapping(opts.MappingFile)
	if err != nil {
		return err
	}
	logger.Infof("Loaded mapping version %s (%d sources)", mapping.Version, len(mapping.Sources))

	extractors := make(map[string]etl.Extractor, len(opts.Sources))
	for name, path := range opts.Sources {
		if _, ok := mapping.Sources[name]; !ok {
			return fmt.Errorf("source '%s' is not declared in the mapping file", name)
		}
		extractors[name] = &etl.FileExtractor{Path: path}
	}

	var loader etl.Loader
	if !opts.DryRun {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		sqlDB, err := database.ConnectSQL(cfg.SQLConnString)
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		table := mapping.FactTable
		if table == "" {
			table = "sales_fact"
		}
		loader = &etl.SQLLoader{DB: sqlDB, Table: table}
	}

	pipeline := etl.NewPipeline(extractors, loader, mapping, opts.DryRun)
	if _, err := pipeline.Run(); err != nil {
		return err
	}

	return nil
}
