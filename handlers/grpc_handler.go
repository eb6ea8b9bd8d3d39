package handlers

import (
	"context"
	"errors"
	"io"

	filev1 "github.com/Yulian302/lfusys-services-files/api/filev1"
	"github.com/Yulian302/lfusys-services-files/apperror"
	"github.com/Yulian302/lfusys-services-files/auth"
	logger "github.com/Yulian302/lfusys-services-files/logging"
	"github.com/Yulian302/lfusys-services-files/models"
	"github.com/Yulian302/lfusys-services-files/services"
	"google.golang.org/grpc"
)

type GrpcHandler struct {
	fileService      services.FileService
	transferService  services.TransferService
	multipartService services.MultipartService
	logger           logger.Logger
	filev1.UnimplementedFileServiceServer
}

func NewGrpcHandler(
	fileSvc services.FileService,
	transferSvc services.TransferService,
	multipartSvc services.MultipartService,
	l logger.Logger,
) *GrpcHandler {
	return &GrpcHandler{
		fileService:      fileSvc,
		transferService:  transferSvc,
		multipartService: multipartSvc,
		logger:           l,
	}
}

func ownerOf(ctx context.Context) (string, error) {
	owner, ok := auth.OwnerFromContext(ctx)
	if !ok {
		return "", apperror.GRPCStatus(apperror.ErrUnauthenticated)
	}
	return owner, nil
}

func toPbFile(f *models.File) *filev1.File {
	return &filev1.File{
		Id:          f.FileId,
		UserId:      f.OwnerId,
		Filename:    f.Name,
		Size:        f.Size,
		ContentType: f.ContentType,
		CreatedAt:   f.CreatedAt,
	}
}

func (h *GrpcHandler) CreateFile(ctx context.Context, req *filev1.CreateFileRequest) (*filev1.FileResponse, error) {
	owner, err := ownerOf(ctx)
	if err != nil {
		return nil, err
	}

	file, err := h.fileService.CreateFile(ctx, owner, services.CreateFileInput{
		Filename:    req.GetFilename(),
		ContentType: req.GetContentType(),
		Size:        req.GetSize(),
	})
	if err != nil {
		return nil, apperror.GRPCStatus(err)
	}
	return &filev1.FileResponse{File: toPbFile(file)}, nil
}

func (h *GrpcHandler) ListFiles(ctx context.Context, _ *filev1.ListFilesRequest) (*filev1.ListFilesResponse, error) {
	owner, err := ownerOf(ctx)
	if err != nil {
		return nil, err
	}

	files, err := h.fileService.ListFiles(ctx, owner)
	if err != nil {
		return nil, apperror.GRPCStatus(err)
	}

	pbFiles := make([]*filev1.File, len(files))
	for i := range files {
		pbFiles[i] = toPbFile(&files[i])
	}
	return &filev1.ListFilesResponse{Files: pbFiles}, nil
}

func (h *GrpcHandler) GetFile(ctx context.Context, req *filev1.GetFileRequest) (*filev1.FileResponse, error) {
	owner, err := ownerOf(ctx)
	if err != nil {
		return nil, err
	}

	file, err := h.fileService.GetFile(ctx, owner, req.GetId())
	if err != nil {
		return nil, apperror.GRPCStatus(err)
	}
	return &filev1.FileResponse{File: toPbFile(file)}, nil
}

func (h *GrpcHandler) DeleteFile(ctx context.Context, req *filev1.DeleteFileRequest) (*filev1.DeleteFileResponse, error) {
	owner, err := ownerOf(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.fileService.DeleteFile(ctx, owner, req.GetId()); err != nil {
		return nil, apperror.GRPCStatus(err)
	}
	return &filev1.DeleteFileResponse{Success: true}, nil
}

// uploadStream adapts the gRPC request stream to services.UploadStream.
type uploadStream struct {
	stream grpc.ClientStreamingServer[filev1.UploadFileRequest, filev1.FileResponse]
}

func (s uploadStream) Recv() (*services.UploadMessage, error) {
	req, err := s.stream.Recv()
	if err != nil {
		return nil, err
	}

	if meta := req.GetMetadata(); meta != nil {
		return &services.UploadMessage{Metadata: &services.UploadMetadata{
			Filename:    meta.GetFilename(),
			ContentType: meta.GetContentType(),
		}}, nil
	}
	return &services.UploadMessage{Chunk: req.GetChunk()}, nil
}

func (h *GrpcHandler) UploadFile(stream grpc.ClientStreamingServer[filev1.UploadFileRequest, filev1.FileResponse]) error {
	ctx := stream.Context()
	owner, err := ownerOf(ctx)
	if err != nil {
		return err
	}

	file, err := h.transferService.Upload(ctx, owner, uploadStream{stream: stream})
	if err != nil {
		return apperror.GRPCStatus(err)
	}
	return stream.SendAndClose(&filev1.FileResponse{File: toPbFile(file)})
}

func (h *GrpcHandler) DownloadFile(req *filev1.DownloadFileRequest, stream grpc.ServerStreamingServer[filev1.DownloadFileResponse]) error {
	ctx := stream.Context()
	owner, err := ownerOf(ctx)
	if err != nil {
		return err
	}

	dl, err := h.transferService.Download(ctx, owner, req.GetId())
	if err != nil {
		return apperror.GRPCStatus(err)
	}
	defer dl.Close()

	if err := stream.Send(&filev1.DownloadFileResponse{
		Data: &filev1.DownloadFileResponse_Metadata{Metadata: &filev1.DownloadFileMetadata{
			Filename:    dl.File.Name,
			ContentType: dl.File.ContentType,
			Size:        dl.File.Size,
		}},
	}); err != nil {
		return err
	}

	for {
		chunk, err := dl.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			h.logger.Error("download aborted", "file_id", dl.File.FileId, "error", err)
			return apperror.GRPCStatus(err)
		}

		if err := stream.Send(&filev1.DownloadFileResponse{
			Data: &filev1.DownloadFileResponse_Chunk{Chunk: chunk},
		}); err != nil {
			// client went away
			return err
		}
	}
}

func (h *GrpcHandler) InitiateMultipartUpload(ctx context.Context, req *filev1.InitiateMultipartUploadRequest) (*filev1.InitiateMultipartUploadResponse, error) {
	owner, err := ownerOf(ctx)
	if err != nil {
		return nil, err
	}

	res, err := h.multipartService.Initiate(ctx, owner, services.InitiateInput{
		Filename:    req.GetFilename(),
		ContentType: req.GetContentType(),
		TotalSize:   req.GetTotalSize(),
	})
	if err != nil {
		return nil, apperror.GRPCStatus(err)
	}

	return &filev1.InitiateMultipartUploadResponse{
		UploadId:   res.UploadID,
		ChunkSize:  res.PartSize,
		TotalParts: res.TotalParts,
	}, nil
}

func (h *GrpcHandler) UploadPart(ctx context.Context, req *filev1.UploadPartRequest) (*filev1.UploadPartResponse, error) {
	owner, err := ownerOf(ctx)
	if err != nil {
		return nil, err
	}

	part, err := h.multipartService.UploadPart(ctx, owner, req.GetUploadId(), req.GetPartNumber(), req.GetChunk())
	if err != nil {
		return nil, apperror.GRPCStatus(err)
	}
	return &filev1.UploadPartResponse{Etag: part.ETag, PartNumber: part.PartNumber}, nil
}

func (h *GrpcHandler) CompleteMultipartUpload(ctx context.Context, req *filev1.CompleteMultipartUploadRequest) (*filev1.FileResponse, error) {
	owner, err := ownerOf(ctx)
	if err != nil {
		return nil, err
	}

	parts := make([]models.Part, 0, len(req.GetParts()))
	for _, p := range req.GetParts() {
		parts = append(parts, models.Part{PartNumber: p.GetPartNumber(), ETag: p.GetEtag()})
	}

	file, err := h.multipartService.Complete(ctx, owner, req.GetUploadId(), parts)
	if err != nil {
		return nil, apperror.GRPCStatus(err)
	}
	return &filev1.FileResponse{File: toPbFile(file)}, nil
}

func (h *GrpcHandler) AbortMultipartUpload(ctx context.Context, req *filev1.AbortMultipartUploadRequest) (*filev1.AbortMultipartUploadResponse, error) {
	owner, err := ownerOf(ctx)
	if err != nil {
		return nil, err
	}

	deleted, err := h.multipartService.Abort(ctx, owner, req.GetUploadId())
	if err != nil {
		return nil, apperror.GRPCStatus(err)
	}
	return &filev1.AbortMultipartUploadResponse{Success: deleted}, nil
}
