package googlecalendar

import "time"

type SyncRequestDTO struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type SyncResult struct {
	Synced  int `json:"synced"`
	Removed int `json:"removed"`
}

type ConnectResponse struct {
	AuthURL string `json:"auth_url"`
}
