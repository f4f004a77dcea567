// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: proto/payments/v1/payment_service.proto

package paymentsv1

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

type LineItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	PriceMinor    int64                  `protobuf:"varint,2,opt,name=price_minor,json=priceMinor,proto3" json:"price_minor,omitempty"`
	Qty           int32                  `protobuf:"varint,3,opt,name=qty,proto3" json:"qty,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LineItem) Reset() {
	*x = LineItem{}
	mi := &file_proto_payments_v1_payment_service_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LineItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LineItem) ProtoMessage() {}

func (x *LineItem) ProtoReflect() protoreflect.Message {
	mi := &file_proto_payments_v1_payment_service_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LineItem.ProtoReflect.Descriptor instead.
func (*LineItem) Descriptor() ([]byte, []int) {
	return file_proto_payments_v1_payment_service_proto_rawDescGZIP(), []int{0}
}

func (x *LineItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *LineItem) GetPriceMinor() int64 {
	if x != nil {
		return x.PriceMinor
	}
	return 0
}

func (x *LineItem) GetQty() int32 {
	if x != nil {
		return x.Qty
	}
	return 0
}

type CreateSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Currency      string                 `protobuf:"bytes,2,opt,name=currency,proto3" json:"currency,omitempty"`
	Items         []*LineItem            `protobuf:"bytes,3,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSessionRequest) Reset() {
	*x = CreateSessionRequest{}
	mi := &file_proto_payments_v1_payment_service_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSessionRequest) ProtoMessage() {}

func (x *CreateSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_payments_v1_payment_service_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSessionRequest.ProtoReflect.Descriptor instead.
func (*CreateSessionRequest) Descriptor() ([]byte, []int) {
	return file_proto_payments_v1_payment_service_proto_rawDescGZIP(), []int{1}
}

func (x *CreateSessionRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *CreateSessionRequest) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *CreateSessionRequest) GetItems() []*LineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type CreateSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Url           string                 `protobuf:"bytes,2,opt,name=url,proto3" json:"url,omitempty"`
	CancelUrl     string                 `protobuf:"bytes,3,opt,name=cancel_url,json=cancelUrl,proto3" json:"cancel_url,omitempty"`
	SuccessUrl    string                 `protobuf:"bytes,4,opt,name=success_url,json=successUrl,proto3" json:"success_url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSessionResponse) Reset() {
	*x = CreateSessionResponse{}
	mi := &file_proto_payments_v1_payment_service_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSessionResponse) ProtoMessage() {}

func (x *CreateSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_payments_v1_payment_service_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSessionResponse.ProtoReflect.Descriptor instead.
func (*CreateSessionResponse) Descriptor() ([]byte, []int) {
	return file_proto_payments_v1_payment_service_proto_rawDescGZIP(), []int{2}
}

func (x *CreateSessionResponse) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *CreateSessionResponse) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *CreateSessionResponse) GetCancelUrl() string {
	if x != nil {
		return x.CancelUrl
	}
	return ""
}

func (x *CreateSessionResponse) GetSuccessUrl() string {
	if x != nil {
		return x.SuccessUrl
	}
	return ""
}

var File_proto_payments_v1_payment_service_proto protoreflect.FileDescriptor

const file_proto_payments_v1_payment_service_proto_rawDesc = "" +
	"\n" +
	"'proto/payments/v1/payment_service.proto\x12\vpayments.v1\"Q\n" +
	"\bLineItem\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1f\n" +
	"\vprice_minor\x18\x02 \x01(\x03R\n" +
	"priceMinor\x12\x10\n" +
	"\x03qty\x18\x03 \x01(\x05R\x03qty\"z\n" +
	"\x14CreateSessionRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\x12\x1a\n" +
	"\bcurrency\x18\x02 \x01(\tR\bcurrency\x12+\n" +
	"\x05items\x18\x03 \x03(\v2\x15.payments.v1.LineItemR\x05items\"\x88\x01\n" +
	"\x15CreateSessionResponse\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x10\n" +
	"\x03url\x18\x02 \x01(\tR\x03url\x12\x1d\n" +
	"\n" +
	"cancel_url\x18\x03 \x01(\tR\tcancelUrl\x12\x1f\n" +
	"\vsuccess_url\x18\x04 \x01(\tR\n" +
	"successUrl2h\n" +
	"\x0ePaymentService\x12V\n" +
	"\rCreateSession\x12!.payments.v1.CreateSessionRequest\x1a\".payments.v1.CreateSessionResponseBEZCgithub.com/vladislavdragonenkov/orders/proto/payments/v1;paymentsv1b\x06proto3"

var (
	file_proto_payments_v1_payment_service_proto_rawDescOnce sync.Once
	file_proto_payments_v1_payment_service_proto_rawDescData []byte
)

func file_proto_payments_v1_payment_service_proto_rawDescGZIP() []byte {
	file_proto_payments_v1_payment_service_proto_rawDescOnce.Do(func() {
		file_proto_payments_v1_payment_service_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_payments_v1_payment_service_proto_rawDesc), len(file_proto_payments_v1_payment_service_proto_rawDesc)))
	})
	return file_proto_payments_v1_payment_service_proto_rawDescData
}

var file_proto_payments_v1_payment_service_proto_msgTypes = make([]protoimpl.MessageInfo, 3)
var file_proto_payments_v1_payment_service_proto_goTypes = []any{
	(*LineItem)(nil),              // 0: payments.v1.LineItem
	(*CreateSessionRequest)(nil),  // 1: payments.v1.CreateSessionRequest
	(*CreateSessionResponse)(nil), // 2: payments.v1.CreateSessionResponse
}
var file_proto_payments_v1_payment_service_proto_depIdxs = []int32{
	0, // 0: payments.v1.CreateSessionRequest.items:type_name -> payments.v1.LineItem
	1, // 1: payments.v1.PaymentService.CreateSession:input_type -> payments.v1.CreateSessionRequest
	2, // 2: payments.v1.PaymentService.CreateSession:output_type -> payments.v1.CreateSessionResponse
	2, // [2:3] is the sub-list for method output_type
	1, // [1:2] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_proto_payments_v1_payment_service_proto_init() }
func file_proto_payments_v1_payment_service_proto_init() {
	if File_proto_payments_v1_payment_service_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_payments_v1_payment_service_proto_rawDesc), len(file_proto_payments_v1_payment_service_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   3,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_proto_payments_v1_payment_service_proto_goTypes,
		DependencyIndexes: file_proto_payments_v1_payment_service_proto_depIdxs,
		MessageInfos:      file_proto_payments_v1_payment_service_proto_msgTypes,
	}.Build()
	File_proto_payments_v1_payment_service_proto = out.File
	file_proto_payments_v1_payment_service_proto_goTypes = nil
	file_proto_payments_v1_payment_service_proto_depIdxs = nil
}
