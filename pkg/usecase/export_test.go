package usecase

import "context"

func (x *UseCase) SuperviseOnce(ctx context.Context) {
	x.superviseOnce(ctx)
}

func (x *UseCase) FailureReasonOf(err error) string {
	return failureReason(err)
}
