package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/bemasher/paramcrc/catalog"
	"github.com/bemasher/paramcrc/crc"
	"github.com/bemasher/paramcrc/modelcfg"
)

func main() {
	listenAddr := flag.String("listen", "127.0.0.1:4500", "address to accept checksum connections on")
	metricsAddr := flag.String("metrics", "127.0.0.1:4501", "address to serve /metrics on")
	algo := flag.String("algo", "crc-32/iso-hdlc", "catalog algorithm name or alias")
	model := flag.String("model", "", "path to a YAML custom model; overrides -algo")
	strategy := flag.String("strategy", "full", "calculation strategy: tableless, full, small, ext-full, ext-small")
	framesPerSec := flag.Float64("rate", 1000, "maximum frames per second accepted per connection")
	burst := flag.Int("burst", 100, "per-connection rate limiter burst size")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "crcd: building logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	var params crc.Params
	if *model != "" {
		params, err = modelcfg.Load(*model)
	} else {
		entry, ok := catalog.Lookup(*algo)
		if !ok {
			log.Fatal("unknown catalog algorithm", zap.String("algo", *algo))
		}
		params = entry.Params
	}
	if err != nil {
		log.Fatal("loading model", zap.Error(err))
	}

	strat, err := parseStrategy(*strategy)
	if err != nil {
		log.Fatal("parsing strategy", zap.Error(err))
	}

	ln, err := net.Listen("tcp", *listenAddr)
	if err != nil {
		log.Fatal("listening", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
			log.Error("metrics server exited", zap.Error(err))
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	log.Info("crcd listening",
		zap.String("addr", *listenAddr),
		zap.String("metrics", *metricsAddr),
		zap.Int("width", params.Width),
	)

	srv := NewServer(ln, params, strat, log, *framesPerSec, *burst)
	if err := srv.Serve(ctx); err != nil {
		log.Fatal("serve exited", zap.Error(err))
	}
}

func parseStrategy(s string) (crc.Strategy, error) {
	switch s {
	case "tableless":
		return crc.Tableless, nil
	case "full":
		return crc.FullTable, nil
	case "small":
		return crc.SmallTable, nil
	case "ext-full":
		return crc.ExtFullTable, nil
	case "ext-small":
		return crc.ExtSmallTable, nil
	default:
		return 0, fmt.Errorf("crcd: unknown strategy %q", s)
	}
}
