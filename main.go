package main

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	toolx "github.com/tanpawarit/Chative-Sales-Catalog/agent/tool"
	catalogx "github.com/tanpawarit/Chative-Sales-Catalog/catalog"
	storex "github.com/tanpawarit/Chative-Sales-Catalog/catalog/store"
	ledgerx "github.com/tanpawarit/Chative-Sales-Catalog/ledger"
	configx "github.com/tanpawarit/Chative-Sales-Catalog/pkg/config"
	_ "github.com/tanpawarit/Chative-Sales-Catalog/pkg/logger/autoload"
	qstashx "github.com/tanpawarit/Chative-Sales-Catalog/pkg/qstash"
)

type AppConfig struct {
	OrderLedgerEnabled bool `envconfig:"ORDER_LEDGER_ENABLED" default:"false"`
	OrderEventsEnabled bool `envconfig:"ORDER_EVENTS_ENABLED" default:"false"`
}

func main() {
	ctx := context.Background()

	appCfg := configx.MustNew[AppConfig]("")

	storeCfg := configx.MustNew[storex.Config]("CATALOG")
	store := storex.MustNew(*storeCfg)

	var opts []catalogx.ServiceOption
	if appCfg.OrderLedgerEnabled {
		ledgerCfg := configx.MustNew[ledgerx.Config]("UPSTASH_REDIS")
		orderLedger, err := ledgerx.New(*ledgerCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("build order ledger")
		}
		opts = append(opts, catalogx.WithLedger(orderLedger))
	}
	if appCfg.OrderEventsEnabled {
		qstashCfg := configx.MustNew[qstashx.Config]("QSTASH")
		qstashClient := qstashx.MustNew(*qstashCfg)
		opts = append(opts, catalogx.WithNotifier(catalogx.OrderNotifierFunc(
			func(ctx context.Context, order catalogx.Order) error {
				return qstashClient.PublishJSON(ctx, order)
			},
		)))
	}

	svc, err := catalogx.NewService(store, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("build catalog service")
	}

	infos, _ := toolx.BuildForCatalog(svc)
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
	}

	cat, err := store.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load catalog")
	}

	log.Info().
		Int("products", cat.Len()).
		Str("tools", strings.Join(names, ",")).
		Msg("catalog store ready")
}
