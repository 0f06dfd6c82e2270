// Command transact sends a single transaction to the TotalApps sandbox.
// Intended for manual verification of gateway credentials and connectivity.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Awolacademy/omnipay-total-apps-gateway/internal/adapters/secrets"
	"github.com/Awolacademy/omnipay-total-apps-gateway/internal/adapters/totalapps"
	"github.com/Awolacademy/omnipay-total-apps-gateway/internal/config"
	"github.com/Awolacademy/omnipay-total-apps-gateway/internal/domain/models"
	"github.com/Awolacademy/omnipay-total-apps-gateway/internal/domain/ports"
	pkghttp "github.com/Awolacademy/omnipay-total-apps-gateway/pkg/http"
	"github.com/Awolacademy/omnipay-total-apps-gateway/pkg/logging"
)

func main() {
	var (
		operation = flag.String("op", "sale", "operation: auth, sale, void, refund")
		amount    = flag.String("amount", "1.00", "transaction amount")
		txnID     = flag.String("txn", "", "transaction reference (void/refund)")
		account   = flag.String("account", "", "bank account number (ACH)")
		routing   = flag.String("routing", "", "bank routing number (ACH)")
		name      = flag.String("name", "", "account holder name (ACH)")
		bankName  = flag.String("bank", "", "bank name (ACH)")
		ccNumber  = flag.String("cc", "", "card number")
		ccExpM    = flag.Int("expmonth", 0, "card expiry month")
		ccExpY    = flag.Int("expyear", 0, "card expiry year")
	)
	flag.Parse()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Gateway.Timeout+10*time.Second)
	defer cancel()

	password, err := resolvePassword(ctx, cfg)
	if err != nil {
		logger.Error("failed to resolve gateway credentials", ports.Err(err))
		os.Exit(1)
	}

	gwConfig := totalapps.DefaultConfig(cfg.Gateway.Environment)
	if cfg.Gateway.Endpoint != "" {
		gwConfig.Endpoint = cfg.Gateway.Endpoint
	}
	gwConfig.Username = cfg.Gateway.Username
	gwConfig.Password = password
	gwConfig.Timeout = cfg.Gateway.Timeout

	httpClient := pkghttp.NewHTTPClient(pkghttp.GatewayClientConfig(), gwConfig.Timeout)
	gateway := totalapps.NewGateway(gwConfig, httpClient, logger)

	amt, err := decimal.NewFromString(*amount)
	if err != nil {
		logger.Error("invalid amount", ports.String("amount", *amount))
		os.Exit(1)
	}

	var result *ports.TransactionResult

	switch *operation {
	case "auth", "sale":
		req := &ports.AuthorizeRequest{Amount: amt, Currency: "USD"}
		switch {
		case *account != "":
			req.BankAccount = models.NewBankAccount(map[string]string{
				"accountNumber":         *account,
				"routingNumber":         *routing,
				"bankAccountType":       string(models.AccountTypeChecking),
				"bankHolderAccountType": string(models.HolderTypePersonal),
				"name":                  *name,
				"bankName":              *bankName,
			})
			req.SECCode = models.SECCodeWEB
		case *ccNumber != "":
			card := models.NewCreditCard(map[string]string{"number": *ccNumber, "name": *name})
			card.SetExpiryMonth(*ccExpM).SetExpiryYear(*ccExpY)
			req.Card = card
		default:
			logger.Error("either -account or -cc is required")
			os.Exit(1)
		}
		if *operation == "auth" {
			result, err = gateway.Authorize(ctx, req)
		} else {
			result, err = gateway.Purchase(ctx, req)
		}

	case "void":
		result, err = gateway.Void(ctx, *txnID)

	case "refund":
		result, err = gateway.Refund(ctx, &ports.RefundRequest{TransactionID: *txnID, Amount: amt})

	default:
		logger.Error("unknown operation", ports.String("op", *operation))
		os.Exit(1)
	}

	if err != nil {
		logger.Error("transaction failed", ports.Err(err))
		os.Exit(1)
	}

	logger.Info("transaction complete",
		ports.String("transaction_id", result.TransactionID),
		ports.String("status", string(result.Status)),
		ports.String("auth_code", result.AuthCode),
		ports.String("message", result.Message),
	)
}

func newLogger(cfg *config.Config) (*logging.ZapLogger, error) {
	if cfg.Logger.Development {
		return logging.NewDevelopment()
	}
	return logging.NewProduction()
}

// resolvePassword prefers the configured secrets backend and falls back to
// the TOTALAPPS_PASSWORD environment value.
func resolvePassword(ctx context.Context, cfg *config.Config) (string, error) {
	if cfg.Gateway.Password != "" && cfg.Secrets.Backend == "env" {
		return cfg.Gateway.Password, nil
	}

	zlog, err := zap.NewProduction()
	if err != nil {
		return "", err
	}

	var manager ports.SecretManager
	switch cfg.Secrets.Backend {
	case "aws":
		manager, err = secrets.NewAWSSecretsManager(ctx, secrets.DefaultAWSConfig(cfg.Secrets.AWSRegion), zlog)
	case "vault":
		vcfg := secrets.DefaultVaultConfig(cfg.Secrets.VaultAddr)
		vcfg.Token = cfg.Secrets.VaultToken
		manager, err = secrets.NewVaultSecretManager(vcfg, zlog)
	default:
		manager = secrets.NewEnvSecretManager(zlog)
	}
	if err != nil {
		return "", err
	}

	secret, err := manager.GetSecret(ctx, cfg.Secrets.SecretPath)
	if err != nil {
		return "", err
	}
	return secret.Value, nil
}
