package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-arena/internal/codec"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "arena.api.v1alpha1.CombatService"

// Full method names.
const (
	CreateCharacterMethod = "/" + ServiceName + "/CreateCharacter"
	RollCharacterMethod   = "/" + ServiceName + "/RollCharacter"
	GetCharacterMethod    = "/" + ServiceName + "/GetCharacter"
	ListCharactersMethod  = "/" + ServiceName + "/ListCharacters"
	DeleteCharacterMethod = "/" + ServiceName + "/DeleteCharacter"
	CastSpellMethod       = "/" + ServiceName + "/CastSpell"
	LevelUpMethod         = "/" + ServiceName + "/LevelUp"
	GroupAttackMethod     = "/" + ServiceName + "/GroupAttack"
	GetCombatLogMethod    = "/" + ServiceName + "/GetCombatLog"
)

// CombatServiceServer is the server API for the combat service.
type CombatServiceServer interface {
	CreateCharacter(context.Context, *CreateCharacterRequest) (*CreateCharacterResponse, error)
	RollCharacter(context.Context, *RollCharacterRequest) (*RollCharacterResponse, error)
	GetCharacter(context.Context, *GetCharacterRequest) (*GetCharacterResponse, error)
	ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error)
	DeleteCharacter(context.Context, *DeleteCharacterRequest) (*DeleteCharacterResponse, error)
	CastSpell(context.Context, *CastSpellRequest) (*CastSpellResponse, error)
	LevelUp(context.Context, *LevelUpRequest) (*LevelUpResponse, error)
	GroupAttack(context.Context, *GroupAttackRequest) (*GroupAttackResponse, error)
	GetCombatLog(context.Context, *GetCombatLogRequest) (*GetCombatLogResponse, error)
}

// UnimplementedCombatServiceServer answers every RPC with Unimplemented.
// Embed it to stay compatible when RPCs are added.
type UnimplementedCombatServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

// CreateCharacter implements CombatServiceServer.
func (UnimplementedCombatServiceServer) CreateCharacter(context.Context, *CreateCharacterRequest) (*CreateCharacterResponse, error) {
	return nil, unimplemented("CreateCharacter")
}

// RollCharacter implements CombatServiceServer.
func (UnimplementedCombatServiceServer) RollCharacter(context.Context, *RollCharacterRequest) (*RollCharacterResponse, error) {
	return nil, unimplemented("RollCharacter")
}

// GetCharacter implements CombatServiceServer.
func (UnimplementedCombatServiceServer) GetCharacter(context.Context, *GetCharacterRequest) (*GetCharacterResponse, error) {
	return nil, unimplemented("GetCharacter")
}

// ListCharacters implements CombatServiceServer.
func (UnimplementedCombatServiceServer) ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error) {
	return nil, unimplemented("ListCharacters")
}

// DeleteCharacter implements CombatServiceServer.
func (UnimplementedCombatServiceServer) DeleteCharacter(context.Context, *DeleteCharacterRequest) (*DeleteCharacterResponse, error) {
	return nil, unimplemented("DeleteCharacter")
}

// CastSpell implements CombatServiceServer.
func (UnimplementedCombatServiceServer) CastSpell(context.Context, *CastSpellRequest) (*CastSpellResponse, error) {
	return nil, unimplemented("CastSpell")
}

// LevelUp implements CombatServiceServer.
func (UnimplementedCombatServiceServer) LevelUp(context.Context, *LevelUpRequest) (*LevelUpResponse, error) {
	return nil, unimplemented("LevelUp")
}

// GroupAttack implements CombatServiceServer.
func (UnimplementedCombatServiceServer) GroupAttack(context.Context, *GroupAttackRequest) (*GroupAttackResponse, error) {
	return nil, unimplemented("GroupAttack")
}

// GetCombatLog implements CombatServiceServer.
func (UnimplementedCombatServiceServer) GetCombatLog(context.Context, *GetCombatLogRequest) (*GetCombatLogResponse, error) {
	return nil, unimplemented("GetCombatLog")
}

// unary adapts a typed server method to grpc.MethodHandler.
func unary[Req, Resp any](
	fullMethod string,
	call func(CombatServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		server := srv.(CombatServiceServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc describes the combat service for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CombatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateCharacter", Handler: unary(CreateCharacterMethod, CombatServiceServer.CreateCharacter)},
		{MethodName: "RollCharacter", Handler: unary(RollCharacterMethod, CombatServiceServer.RollCharacter)},
		{MethodName: "GetCharacter", Handler: unary(GetCharacterMethod, CombatServiceServer.GetCharacter)},
		{MethodName: "ListCharacters", Handler: unary(ListCharactersMethod, CombatServiceServer.ListCharacters)},
		{MethodName: "DeleteCharacter", Handler: unary(DeleteCharacterMethod, CombatServiceServer.DeleteCharacter)},
		{MethodName: "CastSpell", Handler: unary(CastSpellMethod, CombatServiceServer.CastSpell)},
		{MethodName: "LevelUp", Handler: unary(LevelUpMethod, CombatServiceServer.LevelUp)},
		{MethodName: "GroupAttack", Handler: unary(GroupAttackMethod, CombatServiceServer.GroupAttack)},
		{MethodName: "GetCombatLog", Handler: unary(GetCombatLogMethod, CombatServiceServer.GetCombatLog)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/combat/v1alpha1/combat.proto",
}

// RegisterCombatServiceServer registers srv on s.
func RegisterCombatServiceServer(s grpc.ServiceRegistrar, srv CombatServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// CombatServiceClient is the client API for the combat service.
type CombatServiceClient interface {
	CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CreateCharacterResponse, error)
	RollCharacter(ctx context.Context, in *RollCharacterRequest, opts ...grpc.CallOption) (*RollCharacterResponse, error)
	GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*GetCharacterResponse, error)
	ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error)
	DeleteCharacter(ctx context.Context, in *DeleteCharacterRequest, opts ...grpc.CallOption) (*DeleteCharacterResponse, error)
	CastSpell(ctx context.Context, in *CastSpellRequest, opts ...grpc.CallOption) (*CastSpellResponse, error)
	LevelUp(ctx context.Context, in *LevelUpRequest, opts ...grpc.CallOption) (*LevelUpResponse, error)
	GroupAttack(ctx context.Context, in *GroupAttackRequest, opts ...grpc.CallOption) (*GroupAttackResponse, error)
	GetCombatLog(ctx context.Context, in *GetCombatLogRequest, opts ...grpc.CallOption) (*GetCombatLogResponse, error)
}

type combatServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCombatServiceClient returns a client that sends every call with the
// JSON codec.
func NewCombatServiceClient(cc grpc.ClientConnInterface) CombatServiceClient {
	return &combatServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CreateCharacterResponse, error) {
	return invoke[CreateCharacterResponse](ctx, c.cc, CreateCharacterMethod, in, opts)
}

func (c *combatServiceClient) RollCharacter(ctx context.Context, in *RollCharacterRequest, opts ...grpc.CallOption) (*RollCharacterResponse, error) {
	return invoke[RollCharacterResponse](ctx, c.cc, RollCharacterMethod, in, opts)
}

func (c *combatServiceClient) GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*GetCharacterResponse, error) {
	return invoke[GetCharacterResponse](ctx, c.cc, GetCharacterMethod, in, opts)
}

func (c *combatServiceClient) ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error) {
	return invoke[ListCharactersResponse](ctx, c.cc, ListCharactersMethod, in, opts)
}

func (c *combatServiceClient) DeleteCharacter(ctx context.Context, in *DeleteCharacterRequest, opts ...grpc.CallOption) (*DeleteCharacterResponse, error) {
	return invoke[DeleteCharacterResponse](ctx, c.cc, DeleteCharacterMethod, in, opts)
}

func (c *combatServiceClient) CastSpell(ctx context.Context, in *CastSpellRequest, opts ...grpc.CallOption) (*CastSpellResponse, error) {
	return invoke[CastSpellResponse](ctx, c.cc, CastSpellMethod, in, opts)
}

func (c *combatServiceClient) LevelUp(ctx context.Context, in *LevelUpRequest, opts ...grpc.CallOption) (*LevelUpResponse, error) {
	return invoke[LevelUpResponse](ctx, c.cc, LevelUpMethod, in, opts)
}

func (c *combatServiceClient) GroupAttack(ctx context.Context, in *GroupAttackRequest, opts ...grpc.CallOption) (*GroupAttackResponse, error) {
	return invoke[GroupAttackResponse](ctx, c.cc, GroupAttackMethod, in, opts)
}

func (c *combatServiceClient) GetCombatLog(ctx context.Context, in *GetCombatLogRequest, opts ...grpc.CallOption) (*GetCombatLogResponse, error) {
	return invoke[GetCombatLogResponse](ctx, c.cc, GetCombatLogMethod, in, opts)
}
