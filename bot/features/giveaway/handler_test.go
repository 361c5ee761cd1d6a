package giveaway

import (
	"context"
	"testing"
	"time"

	"shopkeeper/bot/common"
	"shopkeeper/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowJoinService blocks Join until released, standing in for a backing
// store that takes longer than the interaction deadline.
type slowJoinService struct {
	interfaces.GiveawayService
	started chan string
	release chan struct{}
}

func (s *slowJoinService) Join(ctx context.Context, giveawayID, userID string) error {
	s.started <- giveawayID + "/" + userID
	<-s.release
	return nil
}

func TestHandleEnter_AcknowledgesBeforeJoinCompletes(t *testing.T) {
	t.Parallel()

	svc := &slowJoinService{
		started: make(chan string, 1),
		release: make(chan struct{}),
	}
	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)
	f := New(session, svc)

	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:   discordgo.InteractionMessageComponent,
		Member: &discordgo.Member{User: &discordgo.User{ID: "u1"}},
	}}

	resp := f.HandleEnter(context.Background(), i, common.GiveawayEnter{GiveawayID: "g1"})

	// The acknowledgement must come back while the join is still running
	require.NotNil(t, resp)
	assert.Equal(t, discordgo.InteractionResponseDeferredChannelMessageWithSource, resp.Type)
	assert.NotZero(t, resp.Data.Flags&discordgo.MessageFlagsEphemeral)

	select {
	case got := <-svc.started:
		assert.Equal(t, "g1/u1", got)
	case <-time.After(time.Second):
		t.Fatal("join never started")
	}
	close(svc.release)
}
