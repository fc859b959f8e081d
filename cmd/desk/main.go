package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	pyroscope "github.com/grafana/pyroscope-go"
	"github.com/yanun0323/logs"

	"main/internal/archive"
	"main/internal/booking"
	"main/internal/execution"
	"main/internal/feed"
	"main/internal/inquiry"
	"main/internal/marketdata"
	"main/internal/model"
	"main/internal/obs"
	"main/internal/ops"
	"main/internal/position"
	"main/internal/pricing"
	"main/internal/report"
	"main/internal/risk"
	"main/internal/service"
	"main/internal/streaming"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON config")
	generate := flag.Bool("gen", false, "Generate input files before running")
	genSeed := flag.Int64("gen-seed", 1, "Seed for generated input files")
	flag.Parse()

	cfg, err := ops.Load(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if cfg.Profiling.Enabled {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: cfg.Profiling.AppName,
			ServerAddress:   cfg.Profiling.ServerAddress,
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocObjects,
				pyroscope.ProfileInuseSpace,
			},
		})
		if err != nil {
			log.Fatalf("pyroscope start failed: %v", err)
		}
		defer profiler.Stop()
	}

	if *generate {
		if err := feed.NewGenerator(cfg.InputDir, *genSeed).WriteAll(); err != nil {
			log.Fatalf("input generation failed: %v", err)
		}
	}

	if err := run(cfg); err != nil {
		log.Fatalf("desk run failed: %v", err)
	}
}

func run(cfg ops.Loaded) error {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return err
	}

	out, err := openReports(cfg.OutputDir)
	if err != nil {
		return err
	}
	defer out.close()

	metrics := obs.NewMetrics()

	// Trade pipeline: booking -> position -> risk, with the position
	// report on the primary listeners and the risk report on the
	// risk stage's historical set.
	bookingSvc := booking.New()
	positionSvc := position.New()
	riskSvc := risk.New(cfg.PV01)
	bookingSvc.AddListener(obs.Counted[model.Trade](metrics, obs.StageTrades, positionSvc))
	positionSvc.AddListener(obs.Counted[*model.Position](metrics, obs.StagePositions, riskSvc))
	positionSvc.AddListener(report.NewPositionReport(out.positions, cfg.Books))
	riskSvc.AddHistoricalListener(obs.Counted[[]risk.PV01](metrics, obs.StageRisk, report.NewRiskReport(out.risk)))

	// Pricing pipeline: pricing -> quoter -> streaming -> report.
	pricingSvc := pricing.New()
	streamingSvc := streaming.New()
	pricingSvc.AddListener(obs.Counted[model.ReferencePrice](metrics, obs.StagePrices,
		streaming.NewQuoter(streamingSvc, cfg.QuoteQty)))
	streamingSvc.AddListener(obs.Counted[model.QuoteStream](metrics, obs.StageStreams,
		report.NewStreamReport(out.streams)))

	// Market data pipeline: marketdata -> algo -> execution -> report.
	marketDataSvc := marketdata.New()
	executionSvc := execution.New()
	marketDataSvc.AddListener(obs.Counted[model.OrderBook](metrics, obs.StageBooks,
		execution.NewAlgo(executionSvc)))
	executionSvc.AddListener(obs.Counted[model.ExecutionOrder](metrics, obs.StageExecutions,
		report.NewExecutionReport(out.executions)))

	// Inquiry workflow.
	inquirySvc := inquiry.New(cfg.QuotePrice)
	inquirySvc.AddListener(obs.Counted[model.Inquiry](metrics, obs.StageInquiries,
		report.NewInquiryReport(out.inquiries)))

	if cfg.Archive.DSN != "" {
		db, err := archive.OpenPostgres(archive.Option{ConnString: cfg.Archive.DSN})
		if err != nil {
			return err
		}
		arch, err := archive.New(db)
		if err != nil {
			return err
		}
		executionSvc.AddListener(service.ListenerFunc[model.ExecutionOrder](arch.SaveExecution))
		inquirySvc.AddListener(service.ListenerFunc[model.Inquiry](arch.SaveInquiry))
		logs.Info("archive enabled")
	}

	feeds := []struct {
		name string
		run  func() error
	}{
		{"marketdata.txt", func() error {
			return feed.NewMarketDataReader(marketDataSvc).ReadFile(cfg.InputPath("marketdata.txt"))
		}},
		{"trades.txt", func() error {
			return feed.NewTradeReader(bookingSvc).ReadFile(cfg.InputPath("trades.txt"))
		}},
		{"prices.txt", func() error {
			return feed.NewPriceReader(pricingSvc).ReadFile(cfg.InputPath("prices.txt"))
		}},
		{"inquiries.txt", func() error {
			return feed.NewInquiryReader(inquirySvc).ReadFile(cfg.InputPath("inquiries.txt"))
		}},
	}
	for _, f := range feeds {
		if err := f.run(); err != nil {
			logs.Errorf("feed %s: %+v", f.name, err)
		}
	}

	logSectorRisk(cfg, riskSvc)

	snap := metrics.Snapshot()
	logs.Infof("pipeline events: %v, listener errors: %d", snap.Events, snap.ListenerErrors)
	return nil
}

func logSectorRisk(cfg ops.Loaded, riskSvc *risk.Service) {
	sectors := cfg.Sectors
	if len(sectors) == 0 {
		sectors = defaultSectors()
	}
	universe := feed.Universe()
	for _, sc := range sectors {
		sector := risk.Sector{Name: sc.Name}
		for _, cusip := range sc.Cusips {
			if b, ok := universe[cusip]; ok {
				sector.Products = append(sector.Products, b)
			} else {
				sector.Products = append(sector.Products, model.Bond{ID: cusip})
			}
		}
		logs.Infof("sector %s risk: %s", sector.Name, riskSvc.BucketedRisk(sector).StringFixed(6))
	}
}

func defaultSectors() []ops.SectorConfig {
	byBucket := map[risk.Bucket][]string{}
	for _, cusip := range feed.Cusips() {
		b := risk.BucketOf(cusip)
		byBucket[b] = append(byBucket[b], cusip)
	}
	return []ops.SectorConfig{
		{Name: risk.FrontEnd.String(), Cusips: byBucket[risk.FrontEnd]},
		{Name: risk.Belly.String(), Cusips: byBucket[risk.Belly]},
		{Name: risk.LongEnd.String(), Cusips: byBucket[risk.LongEnd]},
	}
}

type reportFiles struct {
	positions  *os.File
	risk       *os.File
	streams    *os.File
	executions *os.File
	inquiries  *os.File
}

func openReports(dir string) (*reportFiles, error) {
	var out reportFiles
	targets := []struct {
		name string
		dst  **os.File
	}{
		{"positions.txt", &out.positions},
		{"risk.txt", &out.risk},
		{"streams.txt", &out.streams},
		{"executions.txt", &out.executions},
		{"inquiries.txt", &out.inquiries},
	}
	for _, t := range targets {
		f, err := os.Create(filepath.Join(dir, t.name))
		if err != nil {
			out.close()
			return nil, err
		}
		*t.dst = f
	}
	return &out, nil
}

func (r *reportFiles) close() {
	for _, f := range []*os.File{r.positions, r.risk, r.streams, r.executions, r.inquiries} {
		if f != nil {
			f.Close()
		}
	}
}
