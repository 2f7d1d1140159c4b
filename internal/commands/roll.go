package commands

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"regexp"
	"strconv"

	"discordapi/pkg/discord"
)

var diceRegex = regexp.MustCompile(`(?i)^(\d*)d(\d+)$`)

// Roll rolls dice from a NdM formula, defaulting to a single d6.
type Roll struct{}

func (Roll) Execute(ctx context.Context, client *http.Client, token, channelID, args string) error {
	count, sides := 1, 6
	if args != "" {
		m := diceRegex.FindStringSubmatch(args)
		if m == nil {
			return discord.SendMessage(ctx, client, token, channelID, "Can't parse that. Try something like `2d6`")
		}
		if m[1] != "" {
			count, _ = strconv.Atoi(m[1])
		}
		sides, _ = strconv.Atoi(m[2])
	}
	if count < 1 || count > 100 || sides < 2 || sides > 1000 {
		return discord.SendMessage(ctx, client, token, channelID, "Dice out of range, keep it within 100d1000")
	}

	total := 0
	for i := 0; i < count; i++ {
		total += rand.Intn(sides) + 1
	}
	return discord.SendMessage(ctx, client, token, channelID, fmt.Sprintf("🎲 Rolled %dd%d: **%d**", count, sides, total))
}
