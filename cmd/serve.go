package cmd

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/abhisek/toeiz/internal/llm"
	"github.com/abhisek/toeiz/internal/questiongen"
	"github.com/abhisek/toeiz/internal/server"
	"github.com/abhisek/toeiz/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr and TOEIZ_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	if err := cfg.ValidateServer(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	provider, err := llm.NewProvider(ctx, cfg.LLMConfig(), st.EventRepo(), logger)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	sessions, err := session.NewManager(st.SessionRepo(), session.Options{
		MaxAge: cfg.Server.SessionMaxAge,
		Secure: cfg.Server.SecureCookies,
		Secret: cfg.Server.SecretKey,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	srv, err := server.New(server.Options{
		Users:         st.UserRepo(),
		Favorites:     st.FavoriteRepo(),
		Sessions:      sessions,
		Generator:     questiongen.New(provider, cfg.GeneratorConfig(logger)),
		Logger:        logger,
		CORSOrigins:   cfg.Server.CORSOrigins,
		PruneInterval: time.Hour,
	})
	if err != nil {
		return err
	}

	logger.Info("starting toeiz", "version", version, "provider", cfg.LLM.Provider, "model", provider.ModelID())
	return srv.Run(ctx, cfg.Server.Addr)
}
