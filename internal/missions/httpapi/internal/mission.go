package internal

import (
	"time"

	missionsDomain "geraetewart-server/internal/missions/domain"
)

type MissionResponse struct {
	ID             string    `json:"id"`
	Version        int       `json:"version"`
	Kind           string    `json:"kind"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Date           time.Time `json:"date"`
	LocationID     *string   `json:"location_id,omitempty"`
	ParticipantIDs []string  `json:"participant_ids"`
	EquipmentIDs   []string  `json:"equipment_ids"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type MissionCreateRequest struct {
	Kind           string    `json:"kind"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Date           time.Time `json:"date"`
	LocationID     *string   `json:"location_id,omitempty"`
	ParticipantIDs []string  `json:"participant_ids,omitempty"`
	EquipmentIDs   []string  `json:"equipment_ids,omitempty"`
}

type MissionUpdateRequest struct {
	Kind           *string    `json:"kind,omitempty"`
	Title          *string    `json:"title,omitempty"`
	Description    *string    `json:"description,omitempty"`
	Date           *time.Time `json:"date,omitempty"`
	LocationID     *string    `json:"location_id,omitempty"`
	ParticipantIDs *[]string  `json:"participant_ids,omitempty"`
	EquipmentIDs   *[]string  `json:"equipment_ids,omitempty"`
}

func ToMissionResponse(mission missionsDomain.Mission) MissionResponse {
	result := MissionResponse{
		ID:             mission.ID.String(),
		Version:        int(mission.Version),
		Kind:           string(mission.Kind),
		Title:          mission.Title,
		Description:    mission.Description,
		Date:           mission.Date.Time,
		ParticipantIDs: make([]string, len(mission.ParticipantIDs)),
		EquipmentIDs:   make([]string, len(mission.EquipmentIDs)),
		CreatedAt:      mission.CreatedAt.Time,
		UpdatedAt:      mission.UpdatedAt.Time,
	}

	if mission.LocationID != nil {
		locationID := mission.LocationID.String()
		result.LocationID = &locationID
	}

	for i, personID := range mission.ParticipantIDs {
		result.ParticipantIDs[i] = personID.String()
	}

	for i, equipmentID := range mission.EquipmentIDs {
		result.EquipmentIDs[i] = equipmentID.String()
	}

	return result
}
