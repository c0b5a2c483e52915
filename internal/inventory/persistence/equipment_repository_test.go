package persistence_test

import (
	"context"
	"time"

	"geraetewart-server/internal/infra/sql"
	"geraetewart-server/internal/infra/utils"
	inventoryDomain "geraetewart-server/internal/inventory/domain"
	inventoryPersistence "geraetewart-server/internal/inventory/persistence"
	inventoryUsecases "geraetewart-server/internal/inventory/usecases"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("EquipmentRepository", func() {
	var (
		orm  sql.ORM
		repo inventoryUsecases.EquipmentRepository
		ctx  context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repo, err = inventoryPersistence.NewEquipmentRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(repo).NotTo(gomega.BeNil())

		ctx = context.Background()
	})

	ginkgo.Context("Create and GetByID", func() {
		var equipment inventoryDomain.Equipment

		ginkgo.BeforeEach(func() {
			equipment, _ = inventoryDomain.NewEquipmentBuilder().
				WithName("Atemschutzgerät PA 94").
				WithInventoryNumber("ASG-001").
				WithPurchaseDate(time.Date(2022, 3, 10, 0, 0, 0, 0, time.UTC)).
				Build()
		})

		ginkgo.When("creating valid equipment", func() {
			ginkgo.It("should persist and read it back", func() {
				err := repo.Create(ctx, equipment)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())

				result, err := repo.GetByID(ctx, equipment.ID)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(result.ID).To(gomega.Equal(equipment.ID))
				gomega.Expect(result.Name).To(gomega.Equal(equipment.Name))
				gomega.Expect(result.InventoryNumber).To(gomega.Equal("ASG-001"))
				gomega.Expect(result.Status).To(gomega.Equal(inventoryDomain.EquipmentStatusActive))
			})
		})

		ginkgo.When("equipment does not exist", func() {
			ginkgo.It("should return ErrEquipmentNotFound", func() {
				nonExistentID := shareddomain.ID(utils.GenerateUUID())
				result, err := repo.GetByID(ctx, nonExistentID)
				gomega.Expect(err).To(gomega.MatchError(inventoryUsecases.ErrEquipmentNotFound))
				gomega.Expect(result.ID).To(gomega.BeEmpty())
			})
		})
	})

	ginkgo.Context("FindAll", func() {
		var categoryID shareddomain.ID

		ginkgo.BeforeEach(func() {
			categoryID = shareddomain.ID(utils.GenerateUUID())

			for _, name := range []string{"Schlauch B-20", "Schlauch C-15", "Strahlrohr"} {
				equipment, _ := inventoryDomain.NewEquipmentBuilder().
					WithName(name).
					WithCategoryID(categoryID).
					Build()
				err := repo.Create(ctx, equipment)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
			}

			other, _ := inventoryDomain.NewEquipmentBuilder().
				WithName("Funkgerät").
				Build()
			gomega.Expect(repo.Create(ctx, other)).To(gomega.Succeed())
		})

		ginkgo.When("filtering by category", func() {
			ginkgo.It("should only return equipment of that category", func() {
				filter := inventoryUsecases.EquipmentFilter{CategoryID: categoryID}
				pagination := inventoryUsecases.Pagination{Limit: 10, Offset: 0}

				result, total, err := repo.FindAll(ctx, filter, pagination)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(total).To(gomega.Equal(3))
				gomega.Expect(result).To(gomega.HaveLen(3))
			})
		})

		ginkgo.When("paginating", func() {
			ginkgo.It("should honor limit and offset while reporting the full total", func() {
				filter := inventoryUsecases.EquipmentFilter{}
				pagination := inventoryUsecases.Pagination{Limit: 2, Offset: 0}

				result, total, err := repo.FindAll(ctx, filter, pagination)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(total).To(gomega.Equal(4))
				gomega.Expect(result).To(gomega.HaveLen(2))
			})
		})
	})

	ginkgo.Context("FindAllActive", func() {
		ginkgo.BeforeEach(func() {
			active, _ := inventoryDomain.NewEquipmentBuilder().
				WithName("Aktives Gerät").
				Build()
			gomega.Expect(repo.Create(ctx, active)).To(gomega.Succeed())

			retired, _ := inventoryDomain.NewEquipmentBuilder().
				WithName("Ausgemustertes Gerät").
				WithStatus(inventoryDomain.EquipmentStatusRetired).
				Build()
			gomega.Expect(repo.Create(ctx, retired)).To(gomega.Succeed())
		})

		ginkgo.It("should exclude retired equipment", func() {
			result, err := repo.FindAllActive(ctx)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(result).To(gomega.HaveLen(1))
			gomega.Expect(result[0].Status).To(gomega.Equal(inventoryDomain.EquipmentStatusActive))
		})
	})

	ginkgo.Context("Delete", func() {
		var equipment inventoryDomain.Equipment

		ginkgo.BeforeEach(func() {
			equipment, _ = inventoryDomain.NewEquipmentBuilder().
				WithName("Gerät zum Löschen").
				Build()
			gomega.Expect(repo.Create(ctx, equipment)).To(gomega.Succeed())
		})

		ginkgo.It("should soft delete and hide from active listings", func() {
			err := repo.Delete(ctx, equipment.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			result, err := repo.GetByID(ctx, equipment.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(result.IsDeleted()).To(gomega.BeTrue())

			active, err := repo.FindAllActive(ctx)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(active).To(gomega.BeEmpty())
		})

		ginkgo.When("equipment does not exist", func() {
			ginkgo.It("should return ErrEquipmentNotFound", func() {
				err := repo.Delete(ctx, shareddomain.ID(utils.GenerateUUID()))
				gomega.Expect(err).To(gomega.MatchError(inventoryUsecases.ErrEquipmentNotFound))
			})
		})
	})
})
