package bot

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"shopkeeper/bot/common"
	"shopkeeper/bot/features/balance"
	"shopkeeper/bot/features/coinflip"
	"shopkeeper/bot/features/daily"
	"shopkeeper/bot/features/equip"
	"shopkeeper/bot/features/giveaway"
	"shopkeeper/bot/features/leaderboard"
	"shopkeeper/bot/features/shop"
	"shopkeeper/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	AppID      string
	PublicKey  string // hex-encoded Ed25519 verification key
	GuildID    string
	ListenAddr string
}

// Services bundles everything the features depend on
type Services struct {
	Balance     interfaces.BalanceService
	Purchase    interfaces.PurchaseService
	Equip       interfaces.EquipService
	Daily       interfaces.DailyService
	Gambling    interfaces.GamblingService
	Giveaway    interfaces.GiveawayService
	Leaderboard interfaces.LeaderboardService
	ShopItems   interfaces.ShopItemRepository
}

// Bot serves Discord interactions over the webhook transport. Incoming
// requests are verified, routed to a feature, and answered synchronously
// in the HTTP response body; slow work is acknowledged with a deferred
// response and finished through the REST session.
type Bot struct {
	config    Config
	session   *discordgo.Session
	publicKey ed25519.PublicKey
	server    *http.Server

	balance     *balance.Feature
	shop        *shop.Feature
	equip       *equip.Feature
	daily       *daily.Feature
	coinflip    *coinflip.Feature
	leaderboard *leaderboard.Feature
	giveaway    *giveaway.Feature
}

// New creates the webhook bot over an existing REST session. The session
// is never opened: the webhook transport replaces the gateway.
func New(config Config, session *discordgo.Session, services Services) (*Bot, error) {
	publicKey, err := hex.DecodeString(config.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("error decoding public key: %w", err)
	}
	if len(publicKey) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("public key has length %d, want %d", len(publicKey), ed25519.PublicKeySize)
	}

	bot := &Bot{
		config:    config,
		session:   session,
		publicKey: ed25519.PublicKey(publicKey),

		balance:     balance.New(services.Balance),
		shop:        shop.New(session, services.ShopItems, services.Purchase, services.Balance),
		equip:       equip.New(session, services.Equip, services.ShopItems),
		daily:       daily.New(session, services.Daily),
		coinflip:    coinflip.New(session, services.Gambling),
		leaderboard: leaderboard.New(session, services.Leaderboard),
		giveaway:    giveaway.New(session, services.Giveaway),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/interactions", bot.handleInteraction)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	bot.server = &http.Server{
		Addr:         config.ListenAddr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return bot, nil
}

// Start serves the webhook endpoint until Shutdown
func (b *Bot) Start() error {
	log.Infof("Listening for interactions on %s", b.config.ListenAddr)
	if err := b.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("webhook server failed: %w", err)
	}
	return nil
}

// Shutdown stops accepting interactions and drains in-flight requests
func (b *Bot) Shutdown(ctx context.Context) error {
	return b.server.Shutdown(ctx)
}

func (b *Bot) handleInteraction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !discordgo.VerifyInteraction(r, b.publicKey) {
		log.Warn("Rejected interaction with invalid signature")
		http.Error(w, "invalid request signature", http.StatusUnauthorized)
		return
	}

	var interaction discordgo.Interaction
	if err := json.NewDecoder(r.Body).Decode(&interaction); err != nil {
		log.Errorf("Error decoding interaction: %v", err)
		http.Error(w, "malformed interaction", http.StatusBadRequest)
		return
	}
	i := &discordgo.InteractionCreate{Interaction: &interaction}

	var response *discordgo.InteractionResponse
	switch interaction.Type {
	case discordgo.InteractionPing:
		response = &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong}
	case discordgo.InteractionApplicationCommand:
		response = b.route(func() *discordgo.InteractionResponse { return b.routeCommand(r.Context(), i) })
	case discordgo.InteractionMessageComponent:
		response = b.route(func() *discordgo.InteractionResponse { return b.routeComponent(r.Context(), i) })
	default:
		log.Warnf("Ignoring interaction of type %d", interaction.Type)
		http.Error(w, "unsupported interaction type", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Errorf("Error writing interaction response: %v", err)
	}
}

// route runs a handler and converts a panic into a generic error reply so
// one bad interaction cannot take the endpoint down.
func (b *Bot) route(handle func() *discordgo.InteractionResponse) (response *discordgo.InteractionResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Panic while handling interaction: %v", r)
			response = common.ErrorResponse("Something went wrong. Please try again later.")
		}
	}()
	return handle()
}

func (b *Bot) routeCommand(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	name := i.ApplicationCommandData().Name
	log.WithFields(log.Fields{
		"command": name,
		"userID":  common.InteractionUserID(i),
	}).Info("Handling command")

	switch name {
	case "balance":
		return b.balance.HandleCommand(ctx, i)
	case "shop":
		return b.shop.HandleCommand(ctx, i)
	case "equip":
		return b.equip.HandleEquipCommand(ctx, i)
	case "unequip":
		return b.equip.HandleUnequipCommand(ctx, i)
	case "daily":
		return b.daily.HandleCommand(ctx, i)
	case "coinflip":
		return b.coinflip.HandleCommand(ctx, i)
	case "leaderboard":
		return b.leaderboard.HandleCommand(ctx, i)
	case "giveaway":
		return b.giveaway.HandleCommand(ctx, i)
	default:
		log.Warnf("Unknown command: %s", name)
		return common.ErrorResponse("Unknown command.")
	}
}

func (b *Bot) routeComponent(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	customID := i.MessageComponentData().CustomID
	action, err := common.ParseComponentAction(customID)
	if err != nil {
		log.Warnf("Rejected component interaction: %v", err)
		return common.ErrorResponse("This button is no longer supported.")
	}

	switch a := action.(type) {
	case common.BuyRole:
		return b.shop.HandleBuy(ctx, i, a)
	case common.ShopPrevPage:
		return b.shop.HandlePrevPage(ctx, i, a)
	case common.ShopNextPage:
		return b.shop.HandleNextPage(ctx, i, a)
	case common.GiveawayEnter:
		return b.giveaway.HandleEnter(ctx, i, a)
	case common.EquipSelect:
		return b.equip.HandleEquipSelect(ctx, i)
	case common.UnequipSelect:
		return b.equip.HandleUnequipSelect(ctx, i)
	default:
		log.Warnf("No handler for component action %T", action)
		return common.ErrorResponse("This button is no longer supported.")
	}
}
