package sql_test

import (
	"context"
	"time"

	"geraetewart-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("ORM", func() {
	var (
		orm sql.ORM
		ctx context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ctx = context.Background()
	})

	ginkgo.Context("WithTimeout", func() {
		ginkgo.When("using a timeout context with database operations", func() {
			ginkgo.It("should complete operations within the timeout", func() {
				timeout := 5 * time.Second
				timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
				defer cancel()

				type TimeoutModel struct {
					ID   uint `gorm:"primaryKey"`
					Name string
				}

				err := orm.AutoMigrate(&TimeoutModel{})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())

				var count int64
				err = orm.WithContext(timeoutCtx).Model(&TimeoutModel{}).Count(&count).Error()
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(count).To(gomega.Equal(int64(0)))
			})
		})
	})

	ginkgo.Context("Error mapping", func() {
		ginkgo.When("no record matches a First query", func() {
			ginkgo.It("should map to ErrRecordNotFound", func() {
				type MappingModel struct {
					ID   string `gorm:"primaryKey"`
					Name string
				}

				err := orm.AutoMigrate(&MappingModel{})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())

				var dest MappingModel
				err = orm.WithContext(ctx).First(&dest, "id = ?", "missing").Error()
				gomega.Expect(err).To(gomega.MatchError(sql.ErrRecordNotFound))
			})
		})

		ginkgo.When("an insert violates a unique constraint", func() {
			ginkgo.It("should map to ErrDuplicatedKey", func() {
				type UniqueModel struct {
					ID  string `gorm:"primaryKey"`
					Key string `gorm:"uniqueIndex"`
				}

				err := orm.AutoMigrate(&UniqueModel{})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())

				err = orm.WithContext(ctx).Create(&UniqueModel{ID: "a", Key: "k"}).Error()
				gomega.Expect(err).NotTo(gomega.HaveOccurred())

				err = orm.WithContext(ctx).Create(&UniqueModel{ID: "b", Key: "k"}).Error()
				gomega.Expect(err).To(gomega.MatchError(sql.ErrDuplicatedKey))
			})
		})
	})
})
