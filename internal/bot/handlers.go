package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"lineupbot/internal/service"
)

type Handler struct {
	advice *service.AdviceService
}

func NewHandler(advice *service.AdviceService) *Handler {
	return &Handler{advice: advice}
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := update.Message.CommandArguments()
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to LineupBot! Use /help to see available commands."
	case "help":
		msg.Text = "Available commands:\n/roster - Your roster with weekly projections\n/lineup - Highest projected starting lineup\n/experts - Expert recommended starting lineup\n/ros - Rest-of-season expert ranks for your roster\n/find <player> - Look up a roster player's projection\n/trade <owner> give: <players> get: <players> - Simulate a trade"
	case "roster":
		h.handleRoster(ctx, &msg)
	case "lineup":
		h.handleLineup(ctx, &msg)
	case "experts":
		h.handleExperts(ctx, &msg)
	case "ros":
		h.handleROS(ctx, &msg)
	case "find":
		h.handleFind(ctx, &msg, args)
	case "trade":
		h.handleTrade(ctx, &msg, args)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleRoster(ctx context.Context, msg *tgbotapi.MessageConfig) {
	report, err := h.advice.RosterReport(ctx)
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching roster: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleLineup(ctx context.Context, msg *tgbotapi.MessageConfig) {
	report, err := h.advice.OptimalLineup(ctx)
	if err != nil {
		msg.Text = fmt.Sprintf("Error building lineup: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleExperts(ctx context.Context, msg *tgbotapi.MessageConfig) {
	report, err := h.advice.ExpertLineup(ctx)
	if err != nil {
		msg.Text = fmt.Sprintf("Error building expert lineup: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleROS(ctx context.Context, msg *tgbotapi.MessageConfig) {
	report, err := h.advice.ROSReport(ctx)
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching ROS ranks: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleFind(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a player name. Usage: /find <player name>"
		return
	}
	result, err := h.advice.FindPlayer(ctx, args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error finding player: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleTrade(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	owner, give, get, err := parseTradeArgs(args)
	if err != nil {
		msg.Text = fmt.Sprintf("%v\nUsage: /trade <owner> give: <players> get: <players>", err)
		return
	}

	result, err := h.advice.TradeAnalysis(ctx, owner, give, get)
	if err != nil {
		msg.Text = fmt.Sprintf("Error analyzing trade: %v", err)
	} else {
		msg.Text = result
	}
}

// parseTradeArgs splits "/trade Coach Dad give: Player A, Player B get:
// Player C" into its parts. Either list may be empty (a lopsided or
// zero-player simulation is still valid).
func parseTradeArgs(args string) (owner string, give, get []string, err error) {
	giveIdx := strings.Index(strings.ToLower(args), "give:")
	if giveIdx < 0 {
		return "", nil, nil, fmt.Errorf("missing 'give:' section")
	}
	getIdx := strings.Index(strings.ToLower(args), "get:")
	if getIdx < giveIdx {
		return "", nil, nil, fmt.Errorf("missing 'get:' section")
	}

	owner = strings.TrimSpace(args[:giveIdx])
	if owner == "" {
		return "", nil, nil, fmt.Errorf("missing owner name")
	}

	give = splitNames(args[giveIdx+len("give:") : getIdx])
	get = splitNames(args[getIdx+len("get:"):])
	return owner, give, get, nil
}

func splitNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
