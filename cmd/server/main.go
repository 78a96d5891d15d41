// Command dareguard-server starts the DareGuard gRPC API, the event pump and
// the hook endpoint.
package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/dareus/dareguard/gen/go/dareguard/v1"
	"github.com/dareus/dareguard/internal/audit"
	"github.com/dareus/dareguard/internal/config"
	"github.com/dareus/dareguard/internal/events"
	"github.com/dareus/dareguard/internal/jobs/snapshot"
	"github.com/dareus/dareguard/internal/limiter"
	"github.com/dareus/dareguard/internal/logger"
	"github.com/dareus/dareguard/internal/migrate"
	"github.com/dareus/dareguard/internal/moderation"
	"github.com/dareus/dareguard/internal/policy"
	"github.com/dareus/dareguard/internal/push"
	"github.com/dareus/dareguard/internal/repository"
	"github.com/dareus/dareguard/internal/repository/memstore"
	"github.com/dareus/dareguard/internal/repository/postgres"
	redisrepo "github.com/dareus/dareguard/internal/repository/redis"
	"github.com/dareus/dareguard/internal/scoring"
	grpcserver "github.com/dareus/dareguard/internal/server/grpc"
	"github.com/dareus/dareguard/internal/server/hooks"
	"github.com/dareus/dareguard/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// stores is the storage backend selected by config.
type stores struct {
	users     repository.UserRepository
	dares     repository.DareRepository
	links     repository.LinkRequestRepository
	notes     repository.NotificationRepository
	comps     repository.CompetitionRepository
	audit     repository.AuditSink
	purchases repository.PurchaseRepository
	eventLog  limiter.EventLog

	// feed streams change notices; nil for the in-memory backend, where the
	// hook endpoint is the only event source.
	feed  *postgres.Listener
	close func()
}

func openPostgres(ctx context.Context, dsn string, log *zap.Logger) (*stores, error) {
	if err := migrate.Up(ctx, dsn, log); err != nil {
		return nil, err
	}
	db, err := postgres.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &stores{
		users:     postgres.NewUserRepo(db),
		dares:     postgres.NewDareRepo(db),
		links:     postgres.NewLinkRepo(db),
		notes:     postgres.NewNotificationRepo(db),
		comps:     postgres.NewCompetitionRepo(db),
		audit:     postgres.NewAuditRepo(db),
		purchases: postgres.NewPurchaseRepo(db),
		eventLog:  limiter.NewPGWithQuerier(db.Pool),
		feed:      postgres.NewListener(db.Raw(), log),
		close:     db.Close,
	}, nil
}

// openMemory is for development and tests; seedFile provides the dares and
// notifications the API has no way to create.
func openMemory(ctx context.Context, seedFile string, log *zap.Logger) (*stores, error) {
	m := memstore.New()
	if seedFile != "" {
		f, err := memstore.LoadFixture(seedFile)
		if err != nil {
			return nil, err
		}
		if err := m.Seed(ctx, f, time.Now().UTC()); err != nil {
			return nil, err
		}
		log.Info("seeded memory store",
			zap.String("file", seedFile),
			zap.Int("users", len(f.Users)),
			zap.Int("dares", len(f.Dares)),
			zap.Int("notifications", len(f.Notifications)),
		)
	}
	return &stores{
		users:     m.Users(),
		dares:     m.Dares(),
		links:     m.Links(),
		notes:     m.Notifications(),
		comps:     m.Competitions(),
		audit:     m,
		purchases: m,
		eventLog:  m,
		close:     func() {},
	}, nil
}

// main loads configuration, wires storage and services, and serves until a signal arrives.
func main() {
	configPath := flag.String("config", "", "path to YAML config")
	dev := flag.Bool("dev", false, "console logging, log-only push, purchases always verify, server reflection")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	var log *zap.Logger
	if *dev {
		log, err = logger.NewDevelopment()
	} else {
		log, err = logger.New(cfg.Log.Level)
	}
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", zap.Error(err))
	}
	log.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("storage", cfg.Storage),
		zap.String("grpcAddr", cfg.Server.GRPCAddr),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var st *stores
	if cfg.Storage == config.StorageMemory {
		log.Warn("memory storage is for development and tests")
		st, err = openMemory(ctx, cfg.Memory.SeedFile, log)
	} else {
		st, err = openPostgres(ctx, cfg.Database.DSN, log)
	}
	if err != nil {
		log.Fatal("open storage", zap.Error(err))
	}
	defer st.close()

	catalog, err := policy.Default()
	if cfg.Policy.CatalogFile != "" {
		catalog, err = policy.Load(cfg.Policy.CatalogFile)
	}
	if err != nil {
		log.Fatal("load policy catalog", zap.Error(err))
	}
	mod, err := moderation.New(catalog.Moderation)
	if err != nil {
		log.Fatal("compile moderation rules", zap.Error(err))
	}

	// Push delivery
	var sender push.Sender = push.NewLogSender(log)
	if cfg.APNs.KeyFile != "" && !*dev {
		apns, err := push.NewAPNs(push.APNsConfig{
			KeyFile:    cfg.APNs.KeyFile,
			KeyID:      cfg.APNs.KeyID,
			TeamID:     cfg.APNs.TeamID,
			Topic:      cfg.APNs.Topic,
			Production: cfg.APNs.Production,
		})
		if err != nil {
			log.Fatal("apns client", zap.Error(err))
		}
		sender = apns
	}

	// Store receipt checks need store credentials this process does not hold;
	// only dev mode grants purchases.
	var verifier service.ReceiptVerifier
	if *dev {
		verifier = service.StaticReceiptVerifier{State: service.ReceiptPurchased}
	}

	// Services
	lim := limiter.New(st.users, st.eventLog)
	auditLog := audit.New(st.audit, log)
	points := scoring.NewEngine(st.users, catalog, auditLog, log)
	queue := service.NewEnqueuer(st.notes, log)

	dareSvc := service.NewDareService(st.users, st.dares, mod, lim, points, auditLog, log)
	dispatcher := service.NewDispatcher(st.notes, lim, sender, log)

	// Event handlers
	reg := events.NewRegistry(log)
	reg.OnDareCreated(dareSvc.OnCreated)
	reg.OnDareCompleted(dareSvc.OnCompleted)
	reg.OnNotificationCreated(dispatcher.OnCreated)
	pump := events.NewPump(events.Loader{Dares: st.dares, Notifications: st.notes}, reg, cfg.Events.Workers, log)

	// Daily snapshot job, deduplicated across replicas when Redis is configured
	loc, err := snapshot.LoadLocation(cfg.Jobs.SnapshotTimeZone)
	if err != nil {
		log.Fatal("snapshot time zone", zap.Error(err))
	}
	var lock snapshot.Locker
	if cfg.Redis.Addr != "" {
		rdb := redisrepo.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer func() { _ = rdb.Close() }()
		lock = redisrepo.NewDailyLock(rdb, "dareguard:snapshot", 0)
	}
	host, _ := os.Hostname()
	job := snapshot.New(st.comps, lock, loc, host, log)

	// gRPC server with interceptors
	app := grpcserver.New(grpcserver.Services{
		Dares:        dareSvc,
		Invites:      service.NewInviteService(st.users, lim, auditLog, log),
		Links:        service.NewLinkService(st.users, st.links, queue, log),
		Badges:       points,
		Competitions: service.NewCompetitionService(st.users, st.comps, points, log),
		Premium:      service.NewPremiumService(st.users, st.purchases, verifier, auditLog, log),
	}, []byte(cfg.Auth.JWTKey), log)

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(log),
			grpcserver.LoggingUnary(log),
			app.AuthUnary(),
		),
	}
	if cfg.Server.TLSCert != "" {
		creds, err := credentials.NewServerTLSFromFile(cfg.Server.TLSCert, cfg.Server.TLSKey)
		if err != nil {
			log.Fatal("failed to load TLS cert/key", zap.Error(err))
		}
		opts = append(opts, grpc.Creds(creds))
	}
	s := grpc.NewServer(opts...)
	pb.RegisterDareGuardServer(s, app)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	if *dev {
		reflection.Register(s)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatal("listen", zap.Error(err))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("grpc listening", zap.String("addr", cfg.Server.GRPCAddr), zap.Bool("tls", cfg.Server.TLSCert != ""))
		return s.Serve(lis)
	})

	if st.feed != nil {
		feed := make(chan events.Envelope, 64)
		g.Go(func() error {
			defer close(feed)
			return ignoreCanceled(st.feed.Run(gctx, feed))
		})
		g.Go(func() error { return ignoreCanceled(pump.Run(gctx, feed)) })
	}

	var httpSrv *http.Server
	if cfg.Server.HTTPAddr != "" {
		httpSrv = &http.Server{
			Addr:              cfg.Server.HTTPAddr,
			Handler:           hooks.New(pump, job, cfg.Auth.HookToken, log).Routes(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			log.Info("hooks listening", zap.String("addr", cfg.Server.HTTPAddr))
			if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	// Wait for stop
	g.Go(func() error {
		<-gctx.Done()
		hs.Shutdown()
		if httpSrv != nil {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = httpSrv.Shutdown(sctx)
		}
		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			s.Stop()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", zap.Error(err))
		st.close()
		os.Exit(1)
	}
	log.Info("shutdown complete")
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
