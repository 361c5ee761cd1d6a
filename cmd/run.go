package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"shopkeeper/bot"
	"shopkeeper/config"
	"shopkeeper/discord"
	"shopkeeper/domain/services"
	"shopkeeper/domain/utils"
	"shopkeeper/repository"
	"shopkeeper/sheetstore"
)

// cooldownWindow is the rolling window shared by the daily reward and the
// coinflip
const cooldownWindow = 24 * time.Hour

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting shopkeeper bot...")

	cfg := config.Get()

	credentials, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return fmt.Errorf("failed to read credentials file: %w", err)
	}

	log.Info("Connecting to backing spreadsheet...")
	store, err := sheetstore.New(ctx, cfg.SpreadsheetID, credentials)
	if err != nil {
		return fmt.Errorf("failed to create sheet store: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(store)
	shopItemRepo := repository.NewShopItemRepository(store)
	purchaseRepo := repository.NewPurchaseRepository(store)
	equippedRepo := repository.NewEquippedRoleRepository(store)
	dailyUsageRepo := repository.NewActionUsageRepository(store, repository.TableDailyRewards)
	coinflipUsageRepo := repository.NewActionUsageRepository(store, repository.TableCoinflipUsage)
	leaderboardRepo := repository.NewLeaderboardRepository(store)
	giveawayRepo := repository.NewGiveawayRepository(store)
	participantRepo := repository.NewGiveawayParticipantRepository(store)
	winnerRepo := repository.NewGiveawayWinnerRepository(store)

	// Services
	log.Info("Initializing services...")
	locker := utils.NewUserLocker()
	balanceService := services.NewBalanceService(userRepo)
	purchaseService := services.NewPurchaseService(balanceService, shopItemRepo, purchaseRepo, locker)
	leaderboardService := services.NewLeaderboardService(leaderboardRepo)
	dailyCooldown := services.NewCooldownService(dailyUsageRepo, cooldownWindow)
	coinflipCooldown := services.NewCooldownService(coinflipUsageRepo, cooldownWindow)
	dailyService := services.NewDailyService(balanceService, dailyCooldown, leaderboardService, locker)
	gamblingService := services.NewGamblingService(balanceService, coinflipCooldown, locker)
	giveawayService := services.NewGiveawayService(giveawayRepo, participantRepo, winnerRepo)

	// REST session, shared by the role gateway and the webhook bot's
	// deferred-response edits. Never opened.
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create discord session: %w", err)
	}
	roleGateway := discord.NewRoleGateway(session, cfg.DiscordGuildID)
	equipService := services.NewEquipService(purchaseRepo, equippedRepo, roleGateway)

	// Webhook bot
	log.Info("Initializing Discord bot...")
	discordBot, err := bot.New(bot.Config{
		AppID:      cfg.DiscordAppID,
		PublicKey:  cfg.DiscordPublicKey,
		GuildID:    cfg.DiscordGuildID,
		ListenAddr: cfg.ListenAddr,
	}, session, bot.Services{
		Balance:     balanceService,
		Purchase:    purchaseService,
		Equip:       equipService,
		Daily:       dailyService,
		Gambling:    gamblingService,
		Giveaway:    giveawayService,
		Leaderboard: leaderboardService,
		ShopItems:   shopItemRepo,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}

	if err := discordBot.RegisterCommands(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	log.Info("Slash commands registered")

	errCh := make(chan error, 1)
	go func() {
		errCh <- discordBot.Start()
	}()

	log.Infof("Bot is running in %s mode...", cfg.Environment)
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down bot...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := discordBot.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down webhook server: %v", err)
	}
	log.Info("Shutdown completed")

	return nil
}
