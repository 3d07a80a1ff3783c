package gallery

import (
	"github.com/m04kA/SMC-SurfShopService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
