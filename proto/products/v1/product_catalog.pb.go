// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: proto/products/v1/product_catalog.proto

package productsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Product struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	PriceMinor    int64                  `protobuf:"varint,3,opt,name=price_minor,json=priceMinor,proto3" json:"price_minor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Product) Reset() {
	*x = Product{}
	mi := &file_proto_products_v1_product_catalog_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Product) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Product) ProtoMessage() {}

func (x *Product) ProtoReflect() protoreflect.Message {
	mi := &file_proto_products_v1_product_catalog_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Product.ProtoReflect.Descriptor instead.
func (*Product) Descriptor() ([]byte, []int) {
	return file_proto_products_v1_product_catalog_proto_rawDescGZIP(), []int{0}
}

func (x *Product) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Product) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Product) GetPriceMinor() int64 {
	if x != nil {
		return x.PriceMinor
	}
	return 0
}

type ValidateProductsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ids           []int64                `protobuf:"varint,1,rep,packed,name=ids,proto3" json:"ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateProductsRequest) Reset() {
	*x = ValidateProductsRequest{}
	mi := &file_proto_products_v1_product_catalog_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateProductsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateProductsRequest) ProtoMessage() {}

func (x *ValidateProductsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_products_v1_product_catalog_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateProductsRequest.ProtoReflect.Descriptor instead.
func (*ValidateProductsRequest) Descriptor() ([]byte, []int) {
	return file_proto_products_v1_product_catalog_proto_rawDescGZIP(), []int{1}
}

func (x *ValidateProductsRequest) GetIds() []int64 {
	if x != nil {
		return x.Ids
	}
	return nil
}

// Нерезолвящиеся идентификаторы просто отсутствуют в ответе.
type ValidateProductsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Products      []*Product             `protobuf:"bytes,1,rep,name=products,proto3" json:"products,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateProductsResponse) Reset() {
	*x = ValidateProductsResponse{}
	mi := &file_proto_products_v1_product_catalog_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateProductsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateProductsResponse) ProtoMessage() {}

func (x *ValidateProductsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_products_v1_product_catalog_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateProductsResponse.ProtoReflect.Descriptor instead.
func (*ValidateProductsResponse) Descriptor() ([]byte, []int) {
	return file_proto_products_v1_product_catalog_proto_rawDescGZIP(), []int{2}
}

func (x *ValidateProductsResponse) GetProducts() []*Product {
	if x != nil {
		return x.Products
	}
	return nil
}

var File_proto_products_v1_product_catalog_proto protoreflect.FileDescriptor

const file_proto_products_v1_product_catalog_proto_rawDesc = "" +
	"\n" +
	"'proto/products/v1/product_catalog.proto\x12\vproducts.v1\"N\n" +
	"\aProduct\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1f\n" +
	"\vprice_minor\x18\x03 \x01(\x03R\n" +
	"priceMinor\"+\n" +
	"\x17ValidateProductsRequest\x12\x10\n" +
	"\x03ids\x18\x01 \x03(\x03R\x03ids\"L\n" +
	"\x18ValidateProductsResponse\x120\n" +
	"\bproducts\x18\x01 \x03(\v2\x14.products.v1.ProductR\bproducts2q\n" +
	"\x0eProductCatalog\x12_\n" +
	"\x10ValidateProducts\x12$.products.v1.ValidateProductsRequest\x1a%.products.v1.ValidateProductsResponseBEZCgithub.com/vladislavdragonenkov/orders/proto/products/v1;productsv1b\x06proto3"

var (
	file_proto_products_v1_product_catalog_proto_rawDescOnce sync.Once
	file_proto_products_v1_product_catalog_proto_rawDescData []byte
)

func file_proto_products_v1_product_catalog_proto_rawDescGZIP() []byte {
	file_proto_products_v1_product_catalog_proto_rawDescOnce.Do(func() {
		file_proto_products_v1_product_catalog_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_products_v1_product_catalog_proto_rawDesc), len(file_proto_products_v1_product_catalog_proto_rawDesc)))
	})
	return file_proto_products_v1_product_catalog_proto_rawDescData
}

var file_proto_products_v1_product_catalog_proto_msgTypes = make([]protoimpl.MessageInfo, 3)
var file_proto_products_v1_product_catalog_proto_goTypes = []any{
	(*Product)(nil),                  // 0: products.v1.Product
	(*ValidateProductsRequest)(nil),  // 1: products.v1.ValidateProductsRequest
	(*ValidateProductsResponse)(nil), // 2: products.v1.ValidateProductsResponse
}
var file_proto_products_v1_product_catalog_proto_depIdxs = []int32{
	0, // 0: products.v1.ValidateProductsResponse.products:type_name -> products.v1.Product
	1, // 1: products.v1.ProductCatalog.ValidateProducts:input_type -> products.v1.ValidateProductsRequest
	2, // 2: products.v1.ProductCatalog.ValidateProducts:output_type -> products.v1.ValidateProductsResponse
	2, // [2:3] is the sub-list for method output_type
	1, // [1:2] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_proto_products_v1_product_catalog_proto_init() }
func file_proto_products_v1_product_catalog_proto_init() {
	if File_proto_products_v1_product_catalog_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_products_v1_product_catalog_proto_rawDesc), len(file_proto_products_v1_product_catalog_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   3,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_proto_products_v1_product_catalog_proto_goTypes,
		DependencyIndexes: file_proto_products_v1_product_catalog_proto_depIdxs,
		MessageInfos:      file_proto_products_v1_product_catalog_proto_msgTypes,
	}.Build()
	File_proto_products_v1_product_catalog_proto = out.File
	file_proto_products_v1_product_catalog_proto_goTypes = nil
	file_proto_products_v1_product_catalog_proto_depIdxs = nil
}
