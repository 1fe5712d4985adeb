package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ProductDeleteTestSuite проверяет транзакционный сценарий каскадного
// удаления на уровне SQL: порядок операций и откат при сбое
type ProductDeleteTestSuite struct {
	suite.Suite
	db    *gorm.DB
	mock  sqlmock.Sqlmock
	repo  ProductRepository
	sqlDB *sql.DB
}

func TestProductDeleteSuite(t *testing.T) {
	suite.Run(t, new(ProductDeleteTestSuite))
}

func (s *ProductDeleteTestSuite) SetupTest() {
	var err error
	s.sqlDB, s.mock, err = sqlmock.New()
	require.NoError(s.T(), err)

	dialector := postgres.New(postgres.Config{
		Conn:       s.sqlDB,
		DriverName: "postgres",
	})

	s.db, err = gorm.Open(dialector, &gorm.Config{})
	require.NoError(s.T(), err)

	s.repo = NewProductRepository(s.db)
}

func (s *ProductDeleteTestSuite) TearDownTest() {
	s.sqlDB.Close()
}

func (s *ProductDeleteTestSuite) TestDeleteWithRelations_Success() {
	ctx := context.Background()

	// Сначала удаляются связи в обоих направлениях, потом сам товар
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "product_relations" WHERE main_product_id = $1 OR related_product_id = $2`)).
		WithArgs(int64(1), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "products" WHERE "products"."id" = $1`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	err := s.repo.DeleteWithRelations(ctx, 1)

	s.NoError(err)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *ProductDeleteTestSuite) TestDeleteWithRelations_NotFound() {
	ctx := context.Background()

	// Товара нет: связи удалены вхолостую, транзакция откатывается целиком
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "product_relations" WHERE main_product_id = $1 OR related_product_id = $2`)).
		WithArgs(int64(404), int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "products" WHERE "products"."id" = $1`)).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0)) // 0 rows affected
	s.mock.ExpectRollback()

	err := s.repo.DeleteWithRelations(ctx, 404)

	s.ErrorIs(err, ErrProductNotFound)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *ProductDeleteTestSuite) TestDeleteWithRelations_RelationDeleteError() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "product_relations" WHERE main_product_id = $1 OR related_product_id = $2`)).
		WithArgs(int64(1), int64(1)).
		WillReturnError(sql.ErrConnDone)
	s.mock.ExpectRollback()

	err := s.repo.DeleteWithRelations(ctx, 1)

	s.Error(err)
	s.NoError(s.mock.ExpectationsWereMet())
}
