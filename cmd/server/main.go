// Command server runs the dark pool daemon: the sealed matching
// engine behind a gRPC front door, with the journal, ledger, and
// Kafka broadcast pipeline around it.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"google.golang.org/grpc"

	"darkpool/api/grpcserver"
	"darkpool/api/pb"
	"darkpool/cluster"
	"darkpool/config"
	"darkpool/infra/ledger"
	"darkpool/infra/sequence"
	"darkpool/infra/wal"
	"darkpool/jobs/broadcaster"
	"darkpool/logging"
	"darkpool/service"
)

const appVersion = "0.1.0"

var log = logging.Disabled

func mainCore(ctx context.Context) error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}
	if cfg.ShowVersion {
		fmt.Printf("darkpool server version %s (Go version %s %s/%s)\n",
			appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	}

	// ---------------- Logging ----------------

	lm, closeLogs, err := logging.InitLogging(cfg.LogDir, cfg.DebugLevel, cfg.LocalLogs)
	if err != nil {
		return err
	}
	defer closeLogs()
	log = lm.NewLogger("MAIN")

	cluster.UseLogger(lm.NewLogger("CLUS"))
	wal.UseLogger(lm.NewLogger("WAL"))
	ledger.UseLogger(lm.NewLogger("LDGR"))
	service.UseLogger(lm.NewLogger("SRVC"))
	broadcaster.UseLogger(lm.NewLogger("CAST"))
	grpcserver.UseLogger(lm.NewLogger("GRPC"))

	log.Infof("darkpool server version %s (Go version %s)", appVersion, runtime.Version())

	// ---------------- Cluster keyring ----------------

	keys, err := cluster.LoadKeyring(cfg.KeyFile)
	if err != nil {
		return fmt.Errorf("load keyring: %w", err)
	}
	engine := cluster.NewEngine(keys)
	pub := engine.Public()
	log.Infof("Cluster public key: %x", pub[:])

	// ---------------- Journal and ledger ----------------

	journalDir := filepath.Join(cfg.DataDir, "journal")
	journal, err := wal.Open(wal.Config{
		Dir:         journalDir,
		SegmentSize: cfg.SegmentSize,
	})
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer journal.Close()

	store, err := ledger.Open(filepath.Join(cfg.DataDir, "ledger"))
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer store.Close()

	// ---------------- Service and recovery ----------------

	svc := service.NewLedgerService(engine, sequence.New(0), journal, store)
	if err := svc.Recover(journalDir); err != nil {
		return fmt.Errorf("recover: %w", err)
	}

	// ---------------- Background jobs ----------------

	jobCtx, stopJobs := context.WithCancel(ctx)
	defer stopJobs()

	producer, err := broadcaster.Dial(cfg.KafkaBrokers)
	if err != nil {
		return fmt.Errorf("dial kafka %v: %w", cfg.KafkaBrokers, err)
	}
	bc := broadcaster.New(store, producer, cfg.KafkaTopic, cfg.RetryAfter)
	bc.Start(jobCtx, cfg.BroadcastInterval)
	defer bc.Close()

	svc.StartCheckpointJob(jobCtx, cfg.CheckpointInterval)

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Listen, err)
	}

	grpcSrv := grpc.NewServer(grpc.UnaryInterceptor(grpcserver.RequestID()))
	pb.RegisterDarkpoolServer(grpcSrv, grpcserver.NewServer(svc))

	serveErr := make(chan error, 1)
	go func() { serveErr <- grpcSrv.Serve(lis) }()
	log.Infof("Dark pool engine running on %s. Hit CTRL+C to quit...", lis.Addr())

	select {
	case <-ctx.Done():
		log.Infof("Shutting down...")
		grpcSrv.GracefulStop()
		<-serveErr
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("gRPC server exited: %w", err)
		}
	}

	stopJobs()
	log.Infof("Bye!")
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mainCore(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
