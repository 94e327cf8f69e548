package httpcache

import "net/http"

type Cache interface {
	WrapHandlerFunc(http.HandlerFunc) http.HandlerFunc
	Remove(url string)
	Purge()
}

type NopClient struct {
}

func (NopClient) WrapHandlerFunc(handlerFunc http.HandlerFunc) http.HandlerFunc {
	return handlerFunc
}

func (NopClient) Remove(string) {}

func (NopClient) Purge() {}

func NewNopClient() *NopClient {
	return &NopClient{}
}
