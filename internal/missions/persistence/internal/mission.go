package internal

import (
	"geraetewart-server/internal/infra/utils"
	missionsDomain "geraetewart-server/internal/missions/domain"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

type Mission struct {
	ID          string      `json:"id" gorm:"primaryKey"`
	Version     int         `json:"version"`
	Kind        string      `json:"kind" gorm:"not null;index"`
	Title       string      `json:"title" gorm:"not null"`
	Description string      `json:"description"`
	Date        utils.Time  `json:"date" gorm:"index"`
	LocationID  *string     `json:"location_id,omitempty" gorm:"index"`
	CreatedAt   utils.Time  `json:"created_at"`
	UpdatedAt   utils.Time  `json:"updated_at"`
	DeletedAt   *utils.Time `json:"deleted_at,omitempty" gorm:"index"`

	Participants []MissionParticipant `json:"participants" gorm:"foreignKey:MissionID"`
	Equipment    []MissionEquipment   `json:"equipment" gorm:"foreignKey:MissionID"`
}

func (Mission) TableName() string {
	return "missions"
}

type MissionParticipant struct {
	MissionID string `json:"mission_id" gorm:"primaryKey"`
	PersonID  string `json:"person_id" gorm:"primaryKey"`
}

func (MissionParticipant) TableName() string {
	return "mission_participants"
}

type MissionEquipment struct {
	MissionID   string `json:"mission_id" gorm:"primaryKey"`
	EquipmentID string `json:"equipment_id" gorm:"primaryKey"`
}

func (MissionEquipment) TableName() string {
	return "mission_equipment"
}

func (m Mission) ToDomain() missionsDomain.Mission {
	result := missionsDomain.Mission{
		ID:          shareddomain.ID(m.ID),
		Version:     shareddomain.Version(m.Version),
		Kind:        missionsDomain.MissionKind(m.Kind),
		Title:       m.Title,
		Description: m.Description,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	if m.LocationID != nil {
		locationID := shareddomain.ID(*m.LocationID)
		result.LocationID = &locationID
	}

	for _, participant := range m.Participants {
		result.ParticipantIDs = append(result.ParticipantIDs, shareddomain.ID(participant.PersonID))
	}

	for _, equipment := range m.Equipment {
		result.EquipmentIDs = append(result.EquipmentIDs, shareddomain.ID(equipment.EquipmentID))
	}

	result.DeletedAt = m.DeletedAt

	return result
}

func FromMission(value missionsDomain.Mission) Mission {
	result := Mission{
		ID:          value.ID.String(),
		Version:     int(value.Version),
		Kind:        string(value.Kind),
		Title:       value.Title,
		Description: value.Description,
		Date:        value.Date,
		CreatedAt:   value.CreatedAt,
		UpdatedAt:   value.UpdatedAt,
	}

	if value.LocationID != nil {
		locationID := value.LocationID.String()
		result.LocationID = &locationID
	}

	for _, personID := range value.ParticipantIDs {
		result.Participants = append(result.Participants, MissionParticipant{
			MissionID: value.ID.String(),
			PersonID:  personID.String(),
		})
	}

	for _, equipmentID := range value.EquipmentIDs {
		result.Equipment = append(result.Equipment, MissionEquipment{
			MissionID:   value.ID.String(),
			EquipmentID: equipmentID.String(),
		})
	}

	result.DeletedAt = value.DeletedAt

	return result
}
