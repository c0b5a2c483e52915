package persistence_test

import (
	"context"
	"time"

	"geraetewart-server/internal/infra/sql"
	"geraetewart-server/internal/infra/utils"
	maintenanceDomain "geraetewart-server/internal/maintenance/domain"
	maintenancePersistence "geraetewart-server/internal/maintenance/persistence"
	maintenanceUsecases "geraetewart-server/internal/maintenance/usecases"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("RecordRepository", func() {
	var (
		orm  sql.ORM
		repo maintenanceUsecases.RecordRepository
		ctx  context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repo, err = maintenancePersistence.NewRecordRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		ctx = context.Background()
	})

	newRecord := func(equipmentID, templateID shareddomain.ID, dueDate time.Time) maintenanceDomain.Record {
		record, err := maintenanceDomain.NewRecordBuilder().
			WithEquipmentID(equipmentID).
			WithTemplateID(templateID).
			WithDueDate(dueDate).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		return record
	}

	ginkgo.Context("Create", func() {
		ginkgo.When("inserting two records for the same pair and day", func() {
			ginkgo.It("should reject the second with ErrRecordDuplicate", func() {
				equipmentID := shareddomain.ID(utils.GenerateUUID())
				templateID := shareddomain.ID(utils.GenerateUUID())
				day := time.Date(2024, 4, 15, 8, 0, 0, 0, time.UTC)

				first := newRecord(equipmentID, templateID, day)
				gomega.Expect(repo.Create(ctx, first)).To(gomega.Succeed())

				// Same calendar day, different time of day.
				second := newRecord(equipmentID, templateID, day.Add(10*time.Hour))
				err := repo.Create(ctx, second)
				gomega.Expect(err).To(gomega.MatchError(maintenanceUsecases.ErrRecordDuplicate))
			})
		})

		ginkgo.When("inserting records for different days", func() {
			ginkgo.It("should accept both", func() {
				equipmentID := shareddomain.ID(utils.GenerateUUID())
				templateID := shareddomain.ID(utils.GenerateUUID())

				gomega.Expect(repo.Create(ctx, newRecord(equipmentID, templateID, time.Date(2024, 4, 15, 8, 0, 0, 0, time.UTC)))).To(gomega.Succeed())
				gomega.Expect(repo.Create(ctx, newRecord(equipmentID, templateID, time.Date(2024, 7, 15, 8, 0, 0, 0, time.UTC)))).To(gomega.Succeed())
			})
		})
	})

	ginkgo.Context("ExistsForDay", func() {
		var (
			equipmentID shareddomain.ID
			templateID  shareddomain.ID
		)

		ginkgo.BeforeEach(func() {
			equipmentID = shareddomain.ID(utils.GenerateUUID())
			templateID = shareddomain.ID(utils.GenerateUUID())

			record := newRecord(equipmentID, templateID, time.Date(2024, 4, 15, 23, 0, 0, 0, time.UTC))
			gomega.Expect(repo.Create(ctx, record)).To(gomega.Succeed())
		})

		ginkgo.When("a record exists late on the candidate day", func() {
			ginkgo.It("should match an early-morning candidate on the same day", func() {
				exists, err := repo.ExistsForDay(ctx, equipmentID, templateID, time.Date(2024, 4, 15, 1, 0, 0, 0, time.UTC))
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(exists).To(gomega.BeTrue())
			})
		})

		ginkgo.When("the candidate is on a different day", func() {
			ginkgo.It("should not match", func() {
				exists, err := repo.ExistsForDay(ctx, equipmentID, templateID, time.Date(2024, 4, 16, 1, 0, 0, 0, time.UTC))
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(exists).To(gomega.BeFalse())
			})
		})

		ginkgo.When("the pair differs", func() {
			ginkgo.It("should not match another template on the same day", func() {
				otherTemplate := shareddomain.ID(utils.GenerateUUID())
				exists, err := repo.ExistsForDay(ctx, equipmentID, otherTemplate, time.Date(2024, 4, 15, 1, 0, 0, 0, time.UTC))
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(exists).To(gomega.BeFalse())
			})
		})
	})

	ginkgo.Context("FindAll", func() {
		var equipmentID shareddomain.ID

		ginkgo.BeforeEach(func() {
			equipmentID = shareddomain.ID(utils.GenerateUUID())
			templateID := shareddomain.ID(utils.GenerateUUID())

			for i := range 3 {
				record := newRecord(equipmentID, templateID, time.Date(2024, time.Month(i+1), 10, 8, 0, 0, 0, time.UTC))
				gomega.Expect(repo.Create(ctx, record)).To(gomega.Succeed())
			}
		})

		ginkgo.It("should filter by equipment and order by due date", func() {
			filter := maintenanceUsecases.RecordFilter{EquipmentID: equipmentID}
			pagination := maintenanceUsecases.Pagination{Limit: 10, Offset: 0}

			records, total, err := repo.FindAll(ctx, filter, pagination)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(3))
			gomega.Expect(records).To(gomega.HaveLen(3))
			gomega.Expect(records[0].DueDate.Time.Before(records[1].DueDate.Time)).To(gomega.BeTrue())
		})

		ginkgo.It("should filter by due-before cutoff", func() {
			cutoff := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
			filter := maintenanceUsecases.RecordFilter{EquipmentID: equipmentID, DueBefore: &cutoff}
			pagination := maintenanceUsecases.Pagination{Limit: 10, Offset: 0}

			records, total, err := repo.FindAll(ctx, filter, pagination)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(2))
			gomega.Expect(records).To(gomega.HaveLen(2))
		})
	})

	ginkgo.Context("Update", func() {
		ginkgo.It("should persist a completion", func() {
			equipmentID := shareddomain.ID(utils.GenerateUUID())
			templateID := shareddomain.ID(utils.GenerateUUID())
			record := newRecord(equipmentID, templateID, time.Date(2024, 4, 15, 8, 0, 0, 0, time.UTC))
			gomega.Expect(repo.Create(ctx, record)).To(gomega.Succeed())

			performedBy := shareddomain.ID(utils.GenerateUUID())
			record.Complete(&performedBy, time.Date(2024, 4, 15, 14, 0, 0, 0, time.UTC))
			gomega.Expect(repo.Update(ctx, record)).To(gomega.Succeed())

			stored, err := repo.GetByID(ctx, record.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(stored.Status).To(gomega.Equal(maintenanceDomain.RecordStatusCompleted))
			gomega.Expect(stored.PerformedByID).NotTo(gomega.BeNil())
		})
	})

	ginkgo.Context("Delete", func() {
		ginkgo.It("should remove the record", func() {
			record := newRecord(
				shareddomain.ID(utils.GenerateUUID()),
				shareddomain.ID(utils.GenerateUUID()),
				time.Date(2024, 4, 15, 8, 0, 0, 0, time.UTC),
			)
			gomega.Expect(repo.Create(ctx, record)).To(gomega.Succeed())

			gomega.Expect(repo.Delete(ctx, record.ID)).To(gomega.Succeed())

			_, err := repo.GetByID(ctx, record.ID)
			gomega.Expect(err).To(gomega.MatchError(maintenanceUsecases.ErrRecordNotFound))
		})

		ginkgo.When("the record does not exist", func() {
			ginkgo.It("should return ErrRecordNotFound", func() {
				err := repo.Delete(ctx, shareddomain.ID(utils.GenerateUUID()))
				gomega.Expect(err).To(gomega.MatchError(maintenanceUsecases.ErrRecordNotFound))
			})
		})
	})
})
