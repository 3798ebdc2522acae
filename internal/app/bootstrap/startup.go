// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	adminstore "github.com/dalemusser/acadhub/internal/app/store/admins"
	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.SuperAdminEmail != "" {
		if err := ensureSuperAdmin(ctx, deps, appCfg.SuperAdminEmail, appCfg.SuperAdminPassword, logger); err != nil {
			return err
		}
	}
	return nil
}

// ensureSuperAdmin guarantees an admin account exists for the configured
// email and carries the super admin flag. An existing admin is promoted;
// otherwise the account is created with the configured password, or a
// generated one logged once so the operator can sign in and change it.
func ensureSuperAdmin(ctx context.Context, deps DBDeps, email, password string, logger *zap.Logger) error {
	store := adminstore.New(deps.MongoDatabase)

	existing, err := store.GetByEmail(ctx, email)
	if err == nil {
		if existing.IsSuperAdmin {
			return nil
		}
		_, err = deps.MongoDatabase.Collection("admins").UpdateByID(ctx, existing.ID,
			bson.M{"$set": bson.M{"is_super_admin": true}})
		if err != nil {
			return err
		}
		logger.Info("promoted existing admin to super admin",
			zap.String("email", email))
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	generated := false
	if password == "" {
		password = uuid.NewString()
		generated = true
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	created, err := store.Create(ctx, models.Admin{
		FullName:     "Super Admin",
		Email:        email,
		IsSuperAdmin: true,
		PasswordHash: string(hash),
	})
	if err != nil {
		return err
	}

	if generated {
		logger.Warn("created super admin with a generated password; change it after first sign-in",
			zap.String("email", created.Email),
			zap.String("password", password))
	} else {
		logger.Info("created super admin",
			zap.String("email", created.Email))
	}
	return nil
}
