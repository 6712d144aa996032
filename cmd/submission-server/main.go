// cmd/submission-server/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/aws"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/config"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/database"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/logger"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/observability"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/sheets"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/forms/jobapplication"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/forms/projector"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/forms/talentregistration"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/server"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting submission server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Sheet clients, one per form. A missing credential set is not fatal:
	// the handler gets a nil store and the form's policy decides what happens.
	jobStore := openStore(ctx, log, cfg.Sheets, cfg.Forms.JobApplication, jobapplication.Columns)
	talentStore := openStore(ctx, log, cfg.Sheets, cfg.Forms.TalentRegistration, talentregistration.Columns)

	// --- Optional confirmation email ---
	var notifier *aws.Mailer
	if cfg.Notifications.Email.Enabled {
		notifier, err = aws.NewMailer(ctx, cfg.Notifications.AWS.Region, cfg.Notifications.Email.FromEmail)
		if err != nil {
			zapLog.Warn("SES mailer unavailable, confirmations disabled", zap.Error(err))
			notifier = nil
		}
	}

	// --- Rate limiter: shared Redis window when configured, else per-process ---
	var limiter server.Limiter
	if cfg.Redis.Enabled {
		redisClient, err := database.NewRedis(cfg.Redis)
		if err != nil {
			zapLog.Warn("Redis unavailable, falling back to in-memory rate limiting", zap.Error(err))
			limiter = server.NewLocalLimiter(cfg.RateLimit.PerMinute)
		} else {
			defer redisClient.Close()
			limiter = server.NewFailOpenLimiter(
				server.NewRedisLimiter(redisClient.GetClient(), cfg.RateLimit.PerMinute), log)
		}
	} else {
		limiter = server.NewLocalLimiter(cfg.RateLimit.PerMinute)
	}

	srv, err := server.New(server.Options{
		Config:        cfg,
		Logger:        log,
		Observability: obs,
		Limiter:       limiter,
		Applications:  jobapplication.NewHandler(jobapplication.LoadConfig(cfg.Forms.JobApplication), storeOrNil(jobStore), notifierOrNil(notifier), log),
		Registrations: talentregistration.NewHandler(talentregistration.LoadConfig(cfg.Forms.TalentRegistration), talentStoreOrNil(talentStore), talentNotifierOrNil(notifier), log),
		StorePinger:   pingerOrNil(jobStore),
	})
	if err != nil {
		zapLog.Fatal("server setup failed", zap.Error(err))
	}

	go func() {
		if err := srv.Start(); err != nil {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining requests...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("shutdown did not complete cleanly", zap.Error(err))
	}

	zapLog.Info("Submission server stopped")
}

// openStore opens the sheet behind one form, bootstrapping the header row
// when configured. Returns nil when the form is disabled or the credentials
// are incomplete.
func openStore(ctx context.Context, log logger.Logger, creds config.SheetsConfig, form config.FormConfig, columns []projector.Column) *sheets.Client {
	if !form.Enabled {
		return nil
	}
	client, err := sheets.NewClient(ctx, creds, form.SpreadsheetID, form.SheetName)
	if err != nil {
		log.WithError(err).Warn("Sheet client not created", map[string]interface{}{
			"spreadsheet": form.SpreadsheetID,
		})
		return nil
	}
	if creds.BootstrapHeaders {
		headers := projector.RowSpec{Columns: columns}.Headers()
		bootCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()
		if err := client.EnsureHeaders(bootCtx, headers); err != nil {
			log.WithError(err).Warn("Header bootstrap failed", nil)
		}
	}
	return client
}

// Typed-nil guards: a nil *sheets.Client stored in an interface would not
// compare equal to nil inside the handlers.

func storeOrNil(c *sheets.Client) jobapplication.Store {
	if c == nil {
		return nil
	}
	return c
}

func talentStoreOrNil(c *sheets.Client) talentregistration.Store {
	if c == nil {
		return nil
	}
	return c
}

func notifierOrNil(m *aws.Mailer) jobapplication.Notifier {
	if m == nil {
		return nil
	}
	return m
}

func talentNotifierOrNil(m *aws.Mailer) talentregistration.Notifier {
	if m == nil {
		return nil
	}
	return m
}

func pingerOrNil(c *sheets.Client) server.Pinger {
	if c == nil {
		return nil
	}
	return c
}
