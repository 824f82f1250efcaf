package command

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"omni/wa-simulator/internal/api"
	providerHandler "omni/wa-simulator/internal/api/handler/provider"
	"omni/wa-simulator/internal/config"
	"omni/wa-simulator/internal/domain"
	"omni/wa-simulator/internal/emitter"
	"omni/wa-simulator/internal/ident"
	"omni/wa-simulator/internal/infra"
	"omni/wa-simulator/internal/injector"
	"omni/wa-simulator/internal/journal"
	"omni/wa-simulator/internal/payload"
	"omni/wa-simulator/internal/progress"
	"omni/wa-simulator/internal/relay"
	"omni/wa-simulator/internal/reply"
	"omni/wa-simulator/internal/seed"
	"omni/wa-simulator/internal/service/provider"
	"omni/wa-simulator/internal/store"
	"omni/wa-simulator/pkg/randx"
)

type Server struct {
	Logger *logrus.Logger
}

func (cmd Server) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "run the provider simulator server",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.main(cfg, ctx)
		},
	}
}

func (cmd Server) main(cfg *config.Config, ctx context.Context) {
	rnd := randx.New(cfg.Provider.RandSeed)
	ids := ident.New()
	gen := seed.New(rnd)

	messages := store.NewMessageStore()
	media := store.NewMediaStore()
	contacts := store.NewContactStore()

	em := emitter.New(cmd.Logger)
	builder := payload.NewBuilder(ids, domain.Metadata{
		DisplayPhoneNumber: cfg.Provider.DisplayPhoneNumber,
		PhoneNumberID:      cfg.Provider.PhoneNumberID,
	})

	inj := injector.New(cfg.Provider.Delays, cfg.Provider.ErrorRates, rnd)
	scheduler := progress.New(messages, em, builder, cfg.Provider.Delays, rnd, cmd.Logger)
	replySim := reply.New(em, builder, ids, contacts, gen, cfg.Provider.ReplyProbability, cfg.Provider.Delays.Reply, rnd, cmd.Logger)

	providerService := provider.NewService(
		cfg.Provider, inj, ids, messages, media, contacts, em, builder, gen, scheduler, replySim, cmd.Logger,
	)
	defer providerService.Close()

	if cfg.Provider.SeedData {
		providerService.SeedContacts(25)
	}

	// Forward published webhooks to registered callback URLs.
	em.Subscribe(relay.NewHTTPSink(providerService.Registrations, cmd.Logger).Handle)

	var eventJournal *journal.Journal
	if cfg.Redis.Enabled {
		redisClient, err := infra.NewRedisClient(ctx, cfg.Redis, cmd.Logger)
		if err != nil {
			cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to connect to redis"))
			return
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				cmd.Logger.WithContext(ctx).Error(errors.Wrap(err, "server : failed to close redis"))
			}
		}()

		eventJournal = journal.New(redisClient, cfg.Pagination.MaxHistory, cmd.Logger)
		em.Subscribe(eventJournal.Handle)
	}

	if cfg.Kafka.Enabled {
		kafkaWriter := infra.NewKafkaWriter(cfg.Kafka)
		defer func() {
			if err := kafkaWriter.Close(); err != nil {
				cmd.Logger.WithContext(ctx).Error(errors.Wrap(err, "server : failed to close kafka writer"))
			}
		}()

		em.Subscribe(relay.NewKafkaSink(kafkaWriter, cmd.Logger).Handle)
	}

	var journalDep providerHandler.EventJournal
	if eventJournal != nil {
		journalDep = eventJournal
	}
	handler := providerHandler.New(providerService, journalDep, cfg.Pagination)

	server := api.New(cfg.AppEnv)
	server.SetupAPIRoutes(handler, cfg.HTTP.AccessToken)

	if err := server.Serve(ctx, fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
		cmd.Logger.Fatal(err)
	}
}
