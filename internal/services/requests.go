package services

type DirCheckRequest struct {
	Path string
}
