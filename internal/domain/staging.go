package domain

// StagingRecord accumulates the partial signals of one community's lobby
// announcement until code, count and broadcast alert have all been seen.
type StagingRecord struct {
	CommunityID        CommunityID
	Code               LobbyCode
	Count              *int
	BroadcastAlertSeen bool
	OwnerID            UserID
	AuthorID           UserID
	OriginChannelID    ChannelID
	RawText            string

	CodeWait  TimerSlot
	CountWait TimerSlot
}

func (r *StagingRecord) Complete() bool {
	return r.BroadcastAlertSeen && r.Code != "" && r.Count != nil
}

func (r *StagingRecord) SetCount(count int) {
	r.Count = &count
}

func (r *StagingRecord) StopTimers() {
	r.CodeWait.Cancel()
	r.CountWait.Cancel()
}

// Snapshot copies the record without its timers.
func (r *StagingRecord) Snapshot() StagingRecord {
	out := StagingRecord{
		CommunityID:        r.CommunityID,
		Code:               r.Code,
		BroadcastAlertSeen: r.BroadcastAlertSeen,
		OwnerID:            r.OwnerID,
		AuthorID:           r.AuthorID,
		OriginChannelID:    r.OriginChannelID,
		RawText:            r.RawText,
	}
	if r.Count != nil {
		out.SetCount(*r.Count)
	}

	return out
}
