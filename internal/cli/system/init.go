package system

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/medreminder/internal/cli"
	"github.com/julianstephens/medreminder/internal/logger"
	"github.com/julianstephens/medreminder/internal/seed"
	"github.com/julianstephens/medreminder/internal/storage"
	"github.com/julianstephens/medreminder/internal/storage/postgres"
)

type InitCmd struct {
	Target string `arg:"" optional:"" help:"SQLite path or PostgreSQL URL to write. Defaults to the configured snapshot."`
	Force  bool   `help:"Replace the contents of an existing snapshot."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	target := strings.TrimSpace(c.Target)
	if target == "" {
		source, err := ctx.Source()
		if err != nil {
			return err
		}
		target = source
	}
	if target == "" {
		return errors.New("no snapshot target given. Pass a path or set --snapshot")
	}

	if postgres.IsConnString(target) {
		if _, err := postgres.ValidateConnString(target); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return fmt.Errorf("PostgreSQL target contains embedded credentials. Use the keyring, environment variables or .pgpass instead")
			}
			return err
		}
	} else if !c.Force {
		if _, err := os.Stat(target); err == nil {
			if _, err := storage.ReadSnapshot(target); err == nil {
				return fmt.Errorf("snapshot already exists at %s. Use --force to replace it", target)
			}
		}
	}

	if err := storage.WriteSnapshot(target, seed.Demo(ctx.Clock())); err != nil {
		return err
	}

	logger.Info("snapshot initialized", "target", cli.MaskPassword(target))
	ctx.Printf("✓ Initialized snapshot at: %s\n", cli.MaskPassword(target))
	return nil
}
