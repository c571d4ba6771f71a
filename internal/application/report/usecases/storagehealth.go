package usecases

import (
	"github.com/saase/requesthub/internal/application/report/dto"
)

type StorageHealthUseCase struct {
	info StorageInfo
}

func NewStorageHealthUseCase(info StorageInfo) *StorageHealthUseCase {
	return &StorageHealthUseCase{info: info}
}

func (uc *StorageHealthUseCase) Execute() *dto.StorageHealthDTO {
	return &dto.StorageHealthDTO{
		Region:         uc.info.Region(),
		Endpoint:       uc.info.Endpoint(),
		HasCredentials: uc.info.HasStaticCredentials(),
	}
}
