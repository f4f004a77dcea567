// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: proto/products/v1/product_catalog.proto

package productsv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ProductCatalog_ValidateProducts_FullMethodName = "/products.v1.ProductCatalog/ValidateProducts"
)

// ProductCatalogClient is the client API for ProductCatalog service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ProductCatalogClient interface {
	ValidateProducts(ctx context.Context, in *ValidateProductsRequest, opts ...grpc.CallOption) (*ValidateProductsResponse, error)
}

type productCatalogClient struct {
	cc grpc.ClientConnInterface
}

func NewProductCatalogClient(cc grpc.ClientConnInterface) ProductCatalogClient {
	return &productCatalogClient{cc}
}

func (c *productCatalogClient) ValidateProducts(ctx context.Context, in *ValidateProductsRequest, opts ...grpc.CallOption) (*ValidateProductsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ValidateProductsResponse)
	err := c.cc.Invoke(ctx, ProductCatalog_ValidateProducts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProductCatalogServer is the server API for ProductCatalog service.
// All implementations must embed UnimplementedProductCatalogServer
// for forward compatibility.
type ProductCatalogServer interface {
	ValidateProducts(context.Context, *ValidateProductsRequest) (*ValidateProductsResponse, error)
	mustEmbedUnimplementedProductCatalogServer()
}

// UnimplementedProductCatalogServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedProductCatalogServer struct{}

func (UnimplementedProductCatalogServer) ValidateProducts(context.Context, *ValidateProductsRequest) (*ValidateProductsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ValidateProducts not implemented")
}
func (UnimplementedProductCatalogServer) mustEmbedUnimplementedProductCatalogServer() {}
func (UnimplementedProductCatalogServer) testEmbeddedByValue()                        {}

// UnsafeProductCatalogServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ProductCatalogServer will
// result in compilation errors.
type UnsafeProductCatalogServer interface {
	mustEmbedUnimplementedProductCatalogServer()
}

func RegisterProductCatalogServer(s grpc.ServiceRegistrar, srv ProductCatalogServer) {
	// If the following call pancis, it indicates UnimplementedProductCatalogServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ProductCatalog_ServiceDesc, srv)
}

func _ProductCatalog_ValidateProducts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ValidateProductsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProductCatalogServer).ValidateProducts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProductCatalog_ValidateProducts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProductCatalogServer).ValidateProducts(ctx, req.(*ValidateProductsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ProductCatalog_ServiceDesc is the grpc.ServiceDesc for ProductCatalog service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ProductCatalog_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "products.v1.ProductCatalog",
	HandlerType: (*ProductCatalogServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ValidateProducts",
			Handler:    _ProductCatalog_ValidateProducts_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/products/v1/product_catalog.proto",
}
