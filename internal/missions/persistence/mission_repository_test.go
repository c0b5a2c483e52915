package persistence_test

import (
	"context"
	"time"

	"geraetewart-server/internal/infra/sql"
	missionsDomain "geraetewart-server/internal/missions/domain"
	missionsPersistence "geraetewart-server/internal/missions/persistence"
	missionsUsecases "geraetewart-server/internal/missions/usecases"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("MissionRepository", func() {
	var (
		orm  sql.ORM
		repo missionsUsecases.MissionRepository
		ctx  context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repo, err = missionsPersistence.NewMissionRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(repo).NotTo(gomega.BeNil())

		ctx = context.Background()
	})

	newMission := func(kind missionsDomain.MissionKind, title string, date time.Time) missionsDomain.Mission {
		mission, err := missionsDomain.NewMissionBuilder().
			WithKind(kind).
			WithTitle(title).
			WithDate(date).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		return mission
	}

	ginkgo.Context("Create and GetByID", func() {
		ginkgo.When("a mission carries participants and equipment", func() {
			ginkgo.It("should persist the links and read them back", func() {
				mission, err := missionsDomain.NewMissionBuilder().
					WithKind(missionsDomain.MissionKindExercise).
					WithTitle("Atemschutzübung Gewerbegebiet").
					WithDate(time.Date(2024, 5, 4, 19, 0, 0, 0, time.UTC)).
					WithParticipantIDs("person-1", "person-2").
					WithEquipmentIDs("equipment-1").
					Build()
				gomega.Expect(err).NotTo(gomega.HaveOccurred())

				gomega.Expect(repo.Create(ctx, mission)).To(gomega.Succeed())

				found, err := repo.GetByID(ctx, mission.ID)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(found.Title).To(gomega.Equal("Atemschutzübung Gewerbegebiet"))
				gomega.Expect(found.ParticipantIDs).To(gomega.ConsistOf(
					shareddomain.ID("person-1"), shareddomain.ID("person-2")))
				gomega.Expect(found.EquipmentIDs).To(gomega.ConsistOf(shareddomain.ID("equipment-1")))
			})
		})

		ginkgo.When("the mission does not exist", func() {
			ginkgo.It("should return a not found error", func() {
				_, err := repo.GetByID(ctx, "missing-id")
				gomega.Expect(err).To(gomega.MatchError(missionsUsecases.ErrMissionNotFound))
			})
		})
	})

	ginkgo.Context("FindAll", func() {
		ginkgo.BeforeEach(func() {
			missions := []missionsDomain.Mission{
				newMission(missionsDomain.MissionKindMission, "Wohnungsbrand Hauptstraße", time.Date(2024, 1, 12, 3, 0, 0, 0, time.UTC)),
				newMission(missionsDomain.MissionKindMission, "Ölspur B27", time.Date(2024, 2, 20, 8, 0, 0, 0, time.UTC)),
				newMission(missionsDomain.MissionKindExercise, "Monatsübung Februar", time.Date(2024, 2, 5, 19, 0, 0, 0, time.UTC)),
			}
			for _, mission := range missions {
				gomega.Expect(repo.Create(ctx, mission)).To(gomega.Succeed())
			}
		})

		ginkgo.It("should filter by kind", func() {
			found, total, err := repo.FindAll(ctx,
				missionsUsecases.MissionFilter{Kind: missionsDomain.MissionKindExercise},
				missionsUsecases.Pagination{Limit: 10})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(1))
			gomega.Expect(found).To(gomega.HaveLen(1))
			gomega.Expect(found[0].Title).To(gomega.Equal("Monatsübung Februar"))
		})

		ginkgo.It("should filter by date range and order newest first", func() {
			from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
			found, total, err := repo.FindAll(ctx,
				missionsUsecases.MissionFilter{From: &from},
				missionsUsecases.Pagination{Limit: 10})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(2))
			gomega.Expect(found[0].Title).To(gomega.Equal("Ölspur B27"))
			gomega.Expect(found[1].Title).To(gomega.Equal("Monatsübung Februar"))
		})
	})

	ginkgo.Context("Update", func() {
		ginkgo.It("should replace participant links wholesale", func() {
			mission := newMission(missionsDomain.MissionKindMission, "Türöffnung", time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC))
			mission.ParticipantIDs = []shareddomain.ID{"person-1", "person-2"}
			gomega.Expect(repo.Create(ctx, mission)).To(gomega.Succeed())

			mission.ParticipantIDs = []shareddomain.ID{"person-3"}
			gomega.Expect(repo.Update(ctx, mission)).To(gomega.Succeed())

			found, err := repo.GetByID(ctx, mission.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(found.ParticipantIDs).To(gomega.ConsistOf(shareddomain.ID("person-3")))
		})
	})

	ginkgo.Context("Delete", func() {
		ginkgo.It("should soft delete and hide the mission from listings", func() {
			mission := newMission(missionsDomain.MissionKindMission, "Fehlalarm BMA", time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC))
			gomega.Expect(repo.Create(ctx, mission)).To(gomega.Succeed())

			gomega.Expect(repo.Delete(ctx, mission.ID)).To(gomega.Succeed())

			_, total, err := repo.FindAll(ctx, missionsUsecases.MissionFilter{}, missionsUsecases.Pagination{Limit: 10})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.BeZero())
		})
	})
})
